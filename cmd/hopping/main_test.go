package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hopping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestParseArgs_PositionalOrder(t *testing.T) {
	cfg, err := parseArgs([]string{"4"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Order)
	assert.Equal(t, "Configurations", cfg.OutputDir)
	assert.Equal(t, []string{FormatDebug, FormatTerms, FormatJSON}, cfg.Formats)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.SymbolicPositions)
}

func TestParseArgs_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
order: 6
output_dir: results
formats: [yaml]
workers: 2
log_level: debug
symbolic_positions: false
`)
	cfg, err := parseArgs([]string{"-config", path, "-workers", "3", "-formats", "JSON, terms"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Order)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.Equal(t, []string{FormatJSON, FormatTerms}, cfg.Formats)
	assert.Equal(t, 3, cfg.Workers, "flag wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SymbolicPositions, "unset flag keeps file value")
}

func TestParseArgs_Invalid(t *testing.T) {
	cases := map[string][]string{
		"missing order":  {},
		"odd order":      {"-order", "5"},
		"not a number":   {"four"},
		"unknown format": {"-formats", "pdf", "2"},
		"no workers":     {"-workers", "0", "2"},
		"bad level":      {"-log-level", "loud", "2"},
		"extra args":     {"2", "4"},
	}
	for name, args := range cases {
		_, err := parseArgs(args, io.Discard)
		assert.ErrorIs(t, err, ErrConfig, name)
	}

	_, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}, io.Discard)
	assert.Error(t, err)
}

func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-out", dir, "-formats", "debug,terms,json,yaml", "-log-level", "error", "4"}, io.Discard)
	require.NoError(t, err)

	for _, ext := range []string{"debug", "terms", "json", "yaml"} {
		info, err := os.Stat(filepath.Join(dir, "kappa4."+ext))
		require.NoError(t, err, ext)
		assert.NotZero(t, info.Size(), ext)
	}

	data, err := os.ReadFile(filepath.Join(dir, "kappa4.json"))
	require.NoError(t, err)
	var tree struct {
		Terms []struct {
			Pref   string `json:"pref"`
			Traces int    `json:"N_tr"`
		} `json:"terms"`
	}
	require.NoError(t, json.Unmarshal(data, &tree))
	assert.Len(t, tree.Terms, 4)

	debug, err := os.ReadFile(filepath.Join(dir, "kappa4.debug"))
	require.NoError(t, err)
	assert.Contains(t, string(debug), "pm.pm (2)\n")
	assert.Contains(t, string(debug), "W(2,1,x)W(2,1,x + i) (2 Nf^2)")
}
