// Command hopping computes the hopping expansion at a given order and writes
// the results to <output_dir>/kappa<N>.{debug,terms,json,yaml}.
//
// Usage:
//
//	hopping [-config file.yaml] [-order N] [-out dir] [-workers W]
//	        [-formats debug,terms,json,yaml] [-log-level info] [-symbolic=true] [N]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AG-Philipsen/hopping-large-nt/collector"
	"github.com/AG-Philipsen/hopping-large-nt/expansion"
	"github.com/AG-Philipsen/hopping-large-nt/printer"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("hopping failed", "error", err)
		}
		os.Exit(1)
	}
}

// parseArgs merges the optional config file with explicitly set flags and a
// positional order.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("hopping", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "Path to YAML configuration file")
		order      = fs.Int("order", 0, "Expansion order (even, at least 2)")
		out        = fs.String("out", "", "Output directory")
		workers    = fs.Int("workers", 0, "Configurations processed concurrently")
		formats    = fs.String("formats", "", "Comma-separated output formats: debug,terms,json,yaml")
		logLevel   = fs.String("log-level", "", "Log level: debug, info, warn, error")
		symbolic   = fs.Bool("symbolic", true, "Render debug positions symbolically")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "order":
			cfg.Order = *order
		case "out":
			cfg.OutputDir = *out
		case "workers":
			cfg.Workers = *workers
		case "formats":
			cfg.Formats = splitFormats(*formats)
		case "log-level":
			cfg.LogLevel = *logLevel
		case "symbolic":
			cfg.SymbolicPositions = *symbolic
		}
	})

	switch fs.NArg() {
	case 0:
	case 1:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return cfg, fmt.Errorf("%w: the given argument, %q, is not a number", ErrConfig, fs.Arg(0))
		}
		cfg.Order = n
	default:
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrConfig, fs.Args()[1:])
	}

	return cfg, cfg.Validate()
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting hopping expansion",
		"order", cfg.Order,
		"output_dir", cfg.OutputDir,
		"formats", cfg.Formats,
		"workers", cfg.Workers)

	terms := collector.New()
	cat, err := expansion.Run(cfg.Order, terms,
		expansion.WithWorkers(cfg.Workers),
		expansion.WithLogger(logger))
	if err != nil {
		return err
	}
	collected := terms.Extract()
	logger.Info("terms collected", "order", cfg.Order, "terms", len(collected))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	opts := []printer.Option{printer.WithSymbolic(cfg.SymbolicPositions)}
	writers := []struct {
		format string
		write  func(io.Writer) error
	}{
		{FormatDebug, func(w io.Writer) error {
			p := printer.NewDebugPrinter(w, opts...)
			cat.Accept(p)

			return p.Err()
		}},
		{FormatTerms, func(w io.Writer) error {
			p := printer.NewDebugPrinter(w, opts...)
			wilson.Walk(collected, p)

			return p.Err()
		}},
		{FormatJSON, func(w io.Writer) error {
			return tree(collected).WriteJSON(w)
		}},
		{FormatYAML, func(w io.Writer) error {
			return tree(collected).WriteYAML(w)
		}},
	}
	for _, wr := range writers {
		if !cfg.Wants(wr.format) {
			continue
		}
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("kappa%d.%s", cfg.Order, wr.format))
		if err := writeFile(path, wr.write); err != nil {
			return err
		}
		logger.Info("output written", "format", wr.format, "path", path)
	}

	return nil
}

func tree(terms []*wilson.String) *printer.TreePrinter {
	p := printer.NewTreePrinter()
	wilson.Walk(terms, p)

	return p
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
