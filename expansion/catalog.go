package expansion

import (
	"fmt"
	"math/big"

	"github.com/AG-Philipsen/hopping-large-nt/combinat"
)

// Catalog holds the configurations of every even sub-order up to Order.
// Only the top order carries multi-trace composites; they follow the
// single-trace configurations of that order.
type Catalog struct {
	Order int

	// ByOrder[k/2-1] lists the configurations of sub-order k.
	ByOrder [][]*Configuration

	firstMulti int
}

// Generate builds the catalog for an even order ≥ 2.
func Generate(order int) (*Catalog, error) {
	if order < 2 || order%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	c := &Catalog{Order: order, ByOrder: make([][]*Configuration, order/2)}
	for k := 2; k <= order; k += 2 {
		c.ByOrder[k/2-1] = singleTrace(k)
	}
	c.firstMulti = len(c.ByOrder[order/2-1])

	if order > 2 {
		if err := c.composeMultiTrace(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// SubOrder returns the configurations of sub-order k, or nil.
func (c *Catalog) SubOrder(k int) []*Configuration {
	if c == nil || k < 2 || k%2 != 0 || k > c.Order {
		return nil
	}

	return c.ByOrder[k/2-1]
}

// Top returns every configuration of the requested order.
func (c *Catalog) Top() []*Configuration {
	if c == nil || len(c.ByOrder) == 0 {
		return nil
	}

	return c.ByOrder[len(c.ByOrder)-1]
}

// SingleTrace returns the single-trace configurations of the top order.
func (c *Catalog) SingleTrace() []*Configuration {
	top := c.Top()
	if top == nil {
		return nil
	}

	return top[:c.firstMulti]
}

// MultiTrace returns the multi-trace composites of the top order.
func (c *Catalog) MultiTrace() []*Configuration {
	top := c.Top()
	if top == nil {
		return nil
	}

	return top[c.firstMulti:]
}

// singleTrace enumerates all placements of k/2 Forward steps, normalizes
// each and groups them into rotation classes in first-appearance order.
func singleTrace(k int) []*Configuration {
	var classes []*Configuration
	forward := make([]int, 0, k/2)

	var place func(from int)
	place = func(from int) {
		if len(forward) == k/2 {
			cfg := newComposite(k)
			for _, i := range forward {
				cfg.Symbols[i] = Forward
			}
			cfg.Normalize()
			for _, seen := range classes {
				if seen.RotationEqual(cfg) {
					seen.Prefactor.Add(seen.Prefactor, big.NewRat(1, 1))

					return
				}
			}
			cfg.TraceBounds = []int{k}
			classes = append(classes, cfg)

			return
		}
		for i := from; i <= k-(k/2-len(forward)); i++ {
			forward = append(forward, i)
			place(i + 1)
			forward = forward[:len(forward)-1]
		}
	}
	place(0)

	weight := big.NewRat(-2, int64(k))
	for _, cfg := range classes {
		cfg.Prefactor.Mul(cfg.Prefactor, weight)
	}

	return classes
}

type pick struct {
	order, index, count int
}

// composeMultiTrace appends every product of lower-order configurations
// whose lengths sum to the top order. Picks within a sub-order are
// non-decreasing so that each unordered product is generated once.
func (c *Catalog) composeMultiTrace() error {
	values := make([]int, 0, c.Order/2-1)
	for k := 2; k < c.Order; k += 2 {
		values = append(values, k)
	}
	combs, err := combinat.SubsetSums(c.Order, values)
	if err != nil {
		return err
	}

	top := c.Order/2 - 1
	var compose func(comb []int, at, from int, partial *Configuration, picks []pick) error
	compose = func(comb []int, at, from int, partial *Configuration, picks []pick) error {
		subs := c.SubOrder(comb[at])
		for i := from; i < len(subs); i++ {
			next := partial.clone()
			if err := next.overlay(subs[i]); err != nil {
				return err
			}
			chosen := withPick(picks, comb[at], i)

			if at+1 < len(comb) {
				// equal sub-orders continue from i, a new sub-order restarts at 0
				nextFrom := 0
				if comb[at+1] == comb[at] {
					nextFrom = i
				}
				if err := compose(comb, at+1, nextFrom, next, chosen); err != nil {
					return err
				}

				continue
			}

			symmetry := big.NewInt(1)
			for _, p := range chosen {
				symmetry.Mul(symmetry, combinat.Factorial(p.count))
			}
			next.Prefactor.Quo(next.Prefactor, new(big.Rat).SetInt(symmetry))
			c.ByOrder[top] = append(c.ByOrder[top], next)
		}

		return nil
	}

	for _, comb := range combs {
		if err := compose(comb, 0, 0, newComposite(c.Order), nil); err != nil {
			return err
		}
	}

	return nil
}

func withPick(picks []pick, order, index int) []pick {
	out := make([]pick, len(picks), len(picks)+1)
	copy(out, picks)
	if n := len(out); n > 0 && out[n-1].order == order && out[n-1].index == index {
		out[n-1].count++

		return out
	}

	return append(out, pick{order: order, index: index, count: 1})
}
