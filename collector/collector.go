package collector

import (
	"errors"
	"math/big"
	"sort"
	"sync"

	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

// ErrNilTerm indicates a nil term or a term without a prefactor.
var ErrNilTerm = errors.New("collector: term is nil")

// Collector accumulates terms, merging equal ones.
type Collector struct {
	mu    sync.Mutex
	terms []*wilson.String
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{}
}

// Submit stores a copy of w, or adds its prefactor to the equal stored term.
func (c *Collector) Submit(w *wilson.String) error {
	if w == nil || w.Prefactor == nil {
		return ErrNilTerm
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	at := sort.Search(len(c.terms), func(i int) bool {
		return wilson.Compare(c.terms[i], w) >= 0
	})
	if at < len(c.terms) && wilson.Compare(c.terms[at], w) == 0 {
		sum := c.terms[at].Prefactor
		sum.Add(sum, w.Prefactor)
		if sum.Sign() == 0 {
			c.terms = append(c.terms[:at], c.terms[at+1:]...)
		}

		return nil
	}
	if w.Prefactor.Sign() == 0 {
		return nil
	}

	c.terms = append(c.terms, nil)
	copy(c.terms[at+1:], c.terms[at:])
	c.terms[at] = w.Clone()

	return nil
}

// Len returns the number of distinct stored terms.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.terms)
}

// Sum returns the sum of all stored prefactors.
func (c *Collector) Sum() *big.Rat {
	c.mu.Lock()
	defer c.mu.Unlock()

	sum := new(big.Rat)
	for _, w := range c.terms {
		sum.Add(sum, w.Prefactor)
	}

	return sum
}

// Extract returns the merged terms in sorted order and empties c.
func (c *Collector) Extract() []*wilson.String {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.terms
	c.terms = nil

	return out
}
