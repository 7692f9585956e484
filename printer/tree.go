package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/AG-Philipsen/hopping-large-nt/wilson"
	"gopkg.in/yaml.v3"
)

// Tree is the structured form of a list of terms.
type Tree struct {
	Terms []Term `json:"terms" yaml:"terms"`
}

// Term is one product of factors. Pref is an exact rational "a/b" (or an
// integer).
type Term struct {
	Pref    string   `json:"pref" yaml:"pref"`
	Traces  int      `json:"N_tr" yaml:"N_tr"`
	Factors []Factor `json:"factors" yaml:"factors"`
}

// Factor is one Wilson segment with decimal-string fields.
type Factor struct {
	N   string `json:"n" yaml:"n"`
	M   string `json:"m" yaml:"m"`
	Pos string `json:"pos" yaml:"pos"`
}

// TreePrinter collects visited terms into a Tree.
type TreePrinter struct {
	tree    Tree
	current *Term
}

var _ wilson.Visitor = (*TreePrinter)(nil)

// NewTreePrinter returns an empty tree printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{tree: Tree{Terms: []Term{}}}
}

// EnterTerm starts a new Term from the prefactor and trace count of w.
func (p *TreePrinter) EnterTerm(w *wilson.String) {
	p.current = &Term{
		Pref:    w.Prefactor.RatString(),
		Traces:  w.Traces,
		Factors: make([]Factor, 0, len(w.Segments)),
	}
}

// VisitSegment appends s as a Factor of the current term.
func (p *TreePrinter) VisitSegment(s wilson.Segment) {
	if p.current == nil {
		return
	}
	p.current.Factors = append(p.current.Factors, Factor{
		N:   strconv.Itoa(s.N),
		M:   strconv.Itoa(s.M),
		Pos: s.Pos.String(),
	})
}

// ExitTerm appends the current term to the tree.
func (p *TreePrinter) ExitTerm(*wilson.String) {
	if p.current == nil {
		return
	}
	p.tree.Terms = append(p.tree.Terms, *p.current)
	p.current = nil
}

// Tree returns the terms collected so far.
func (p *TreePrinter) Tree() Tree {
	return p.tree
}

// WriteJSON encodes the tree as indented JSON.
func (p *TreePrinter) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(p.tree); err != nil {
		return fmt.Errorf("printer: encode json: %w", err)
	}

	return nil
}

// WriteYAML encodes the tree as YAML.
func (p *TreePrinter) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p.tree); err != nil {
		return fmt.Errorf("printer: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("printer: encode yaml: %w", err)
	}

	return nil
}
