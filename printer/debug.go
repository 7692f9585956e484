package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/AG-Philipsen/hopping-large-nt/expansion"
	"github.com/AG-Philipsen/hopping-large-nt/position"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

// Options configures DebugPrinter.
type Options struct {
	// Symbolic renders positions as "x + i - j" instead of "{1,-1}".
	Symbolic bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions renders positions in the "{a,b}" form.
func DefaultOptions() Options {
	return Options{}
}

// WithSymbolic selects symbolic position rendering.
func WithSymbolic(on bool) Option {
	return func(o *Options) {
		o.Symbolic = on
	}
}

// DebugPrinter writes a readable dump of whatever it visits.
type DebugPrinter struct {
	w    io.Writer
	opts Options
	err  error
}

var _ expansion.Visitor = (*DebugPrinter)(nil)

// NewDebugPrinter returns a printer writing to w.
func NewDebugPrinter(w io.Writer, opts ...Option) *DebugPrinter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &DebugPrinter{w: w, opts: o}
}

// Err returns the first write error, if any.
func (p *DebugPrinter) Err() error { return p.err }

func (p *DebugPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// EnterCatalog prints nothing.
func (p *DebugPrinter) EnterCatalog(*expansion.Catalog) {}

// ExitCatalog prints nothing.
func (p *DebugPrinter) ExitCatalog(*expansion.Catalog) {}

// EnterConfiguration prints the configuration and its prefactor.
func (p *DebugPrinter) EnterConfiguration(cfg *expansion.Configuration) {
	p.printf("%s (%s)\n", cfg, cfg.Prefactor.RatString())
}

// ExitConfiguration ends the configuration block with a blank line.
func (p *DebugPrinter) ExitConfiguration(*expansion.Configuration) {
	p.printf("\n")
}

// EnterPath prints the link pairing as letters.
func (p *DebugPrinter) EnterPath(path *expansion.Path) {
	p.printf("%s\n", linkLetters(path.Links))
}

// VisitSpatial prints one spatial assignment, indented under its path.
func (p *DebugPrinter) VisitSpatial(sp []int) {
	p.printf("    %s\n", linkLetters(sp))
}

// ExitPath ends the path block with a blank line.
func (p *DebugPrinter) ExitPath(*expansion.Path) {
	p.printf("\n")
}

// EnterTerm starts a term line.
func (p *DebugPrinter) EnterTerm(*wilson.String) {
	p.printf("\t")
}

// VisitSegment prints one W(n,m,pos) factor.
func (p *DebugPrinter) VisitSegment(s wilson.Segment) {
	p.printf("W(%d,%d,%s)", s.N, s.M, p.position(s.Pos))
}

// ExitTerm closes the term line with its prefactor and Nf power.
func (p *DebugPrinter) ExitTerm(w *wilson.String) {
	p.printf(" (%s Nf", w.Prefactor.RatString())
	if w.Traces > 1 {
		p.printf("^%d", w.Traces)
	}
	p.printf(")\n")
}

func (p *DebugPrinter) position(pos position.Pos) string {
	if p.opts.Symbolic {
		return pos.Symbolic('x')
	}

	return pos.String()
}

// linkLetters names link ids i, j, k, ... ignoring their sign.
func linkLetters(links []int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, l := range links {
		if i > 0 {
			sb.WriteByte(',')
		}
		if l < 0 {
			l = -l
		}
		sb.WriteByte(byte('i' - 1 + l))
	}
	sb.WriteByte('}')

	return sb.String()
}
