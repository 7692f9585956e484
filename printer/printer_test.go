package printer_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/AG-Philipsen/hopping-large-nt/collector"
	"github.com/AG-Philipsen/hopping-large-nt/expansion"
	"github.com/AG-Philipsen/hopping-large-nt/printer"
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func order2(t *testing.T) (*expansion.Catalog, []*wilson.String) {
	t.Helper()
	c := collector.New()
	cat, err := expansion.Run(2, c, expansion.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	return cat, c.Extract()
}

func TestDebugPrinter_Catalog(t *testing.T) {
	cat, _ := order2(t)

	var buf bytes.Buffer
	p := printer.NewDebugPrinter(&buf)
	cat.Accept(p)
	require.NoError(t, p.Err())

	want := "pm (-2)\n" +
		"{i,i}\n" +
		"    {i,i}\n" +
		"\tW(1,1,{0})W(1,1,{1}) (-2 Nf)\n" +
		"\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestDebugPrinter_SymbolicTerms(t *testing.T) {
	_, terms := order2(t)

	var buf bytes.Buffer
	p := printer.NewDebugPrinter(&buf, printer.WithSymbolic(true))
	wilson.Walk(terms, p)
	require.NoError(t, p.Err())

	assert.Equal(t, "\tW(1,1,x)W(1,1,x + i) (-2 Nf)\n", buf.String())
}

func TestDebugPrinter_TraceExponent(t *testing.T) {
	c := collector.New()
	_, err := expansion.Run(4, c, expansion.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	var buf bytes.Buffer
	wilson.Walk(c.Extract(), printer.NewDebugPrinter(&buf))
	assert.Contains(t, buf.String(), "W(2,1,{0})W(2,1,{1}) (2 Nf^2)\n")
}

type brokenWriter struct{ n int }

var errBroken = errors.New("broken pipe")

func (b *brokenWriter) Write(p []byte) (int, error) {
	b.n++

	return 0, errBroken
}

func TestDebugPrinter_StickyError(t *testing.T) {
	_, terms := order2(t)
	w := &brokenWriter{}
	p := printer.NewDebugPrinter(w)
	wilson.Walk(terms, p)

	assert.ErrorIs(t, p.Err(), errBroken)
	assert.Equal(t, 1, w.n, "writes stop after the first failure")
}

func TestTreePrinter_JSON(t *testing.T) {
	_, terms := order2(t)
	p := printer.NewTreePrinter()
	wilson.Walk(terms, p)

	var buf bytes.Buffer
	require.NoError(t, p.WriteJSON(&buf))

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw["terms"], 1)
	term := raw["terms"][0]
	assert.Equal(t, "-2", term["pref"])
	assert.EqualValues(t, 1, term["N_tr"])
	assert.Equal(t, []any{
		map[string]any{"n": "1", "m": "1", "pos": "{0}"},
		map[string]any{"n": "1", "m": "1", "pos": "{1}"},
	}, term["factors"])
}

func TestTreePrinter_YAML(t *testing.T) {
	_, terms := order2(t)
	p := printer.NewTreePrinter()
	wilson.Walk(terms, p)

	var buf bytes.Buffer
	require.NoError(t, p.WriteYAML(&buf))

	var got printer.Tree
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, p.Tree(), got)
	assert.Contains(t, buf.String(), "N_tr: 1")
}

func TestTreePrinter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printer.NewTreePrinter().WriteJSON(&buf))
	assert.JSONEq(t, `{"terms": []}`, buf.String())
}
