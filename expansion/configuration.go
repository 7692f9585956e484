package expansion

import (
	"fmt"
	"math/big"
	"slices"
	"sort"
	"strings"
)

// Configuration is one weighted P/M sequence, possibly split into several
// traces. TraceBounds holds the exclusive end index of every trace; the
// last bound equals Len().
type Configuration struct {
	Symbols     []Symbol
	TraceBounds []int
	Prefactor   *big.Rat

	// Paths is filled by EnumeratePaths.
	Paths []*Path
}

// NewConfiguration validates symbols against bounds and returns a
// configuration with prefactor 1. Every trace must contain as many Forward
// as Backward steps.
func NewConfiguration(symbols []Symbol, bounds []int) (*Configuration, error) {
	if len(symbols) == 0 || len(bounds) == 0 || bounds[len(bounds)-1] != len(symbols) {
		return nil, fmt.Errorf("%w: bounds %v for length %d", ErrInvalidConfiguration, bounds, len(symbols))
	}
	from := 0
	for _, to := range bounds {
		if to <= from {
			return nil, fmt.Errorf("%w: bounds %v are not increasing", ErrInvalidConfiguration, bounds)
		}
		balance := 0
		for _, s := range symbols[from:to] {
			if s != Forward && s != Backward {
				return nil, fmt.Errorf("%w: symbol %d", ErrInvalidConfiguration, s)
			}
			balance += int(s)
		}
		if balance != 0 {
			return nil, fmt.Errorf("%w: trace [%d,%d) is unbalanced", ErrInvalidConfiguration, from, to)
		}
		from = to
	}

	return &Configuration{
		Symbols:     slices.Clone(symbols),
		TraceBounds: slices.Clone(bounds),
		Prefactor:   big.NewRat(1, 1),
	}, nil
}

// ParseConfiguration reads the "ppmm.pm" notation produced by String.
func ParseConfiguration(s string) (*Configuration, error) {
	var (
		symbols []Symbol
		bounds  []int
	)
	for _, trace := range strings.Split(s, ".") {
		for _, r := range trace {
			switch r {
			case 'p', 'P':
				symbols = append(symbols, Forward)
			case 'm', 'M':
				symbols = append(symbols, Backward)
			default:
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidConfiguration, r, s)
			}
		}
		bounds = append(bounds, len(symbols))
	}

	return NewConfiguration(symbols, bounds)
}

func newComposite(n int) *Configuration {
	symbols := make([]Symbol, n)
	for i := range symbols {
		symbols[i] = Backward
	}

	return &Configuration{Symbols: symbols, Prefactor: big.NewRat(1, 1)}
}

// Len returns the number of steps.
func (c *Configuration) Len() int { return len(c.Symbols) }

// NumTraces returns the number of traces.
func (c *Configuration) NumTraces() int { return len(c.TraceBounds) }

// IsSingleTrace reports whether c consists of exactly one trace.
func (c *Configuration) IsSingleTrace() bool { return len(c.TraceBounds) == 1 }

// Steps returns the symbols as signed temporal steps (+1 / -1).
func (c *Configuration) Steps() []int {
	out := make([]int, len(c.Symbols))
	for i, s := range c.Symbols {
		out[i] = int(s)
	}

	return out
}

// UpperTraceBound returns the exclusive end of the trace containing step i,
// or Len() when i lies past the last trace.
func (c *Configuration) UpperTraceBound(i int) int {
	return upperBound(c.TraceBounds, i, c.Len())
}

// LowerTraceBound returns the start of the trace containing step i.
func (c *Configuration) LowerTraceBound(i int) int {
	return lowerBound(c.TraceBounds, i)
}

// TraceIndex returns the index of the trace containing step i.
func (c *Configuration) TraceIndex(i int) (int, error) {
	return traceIndex(c.TraceBounds, i)
}

func upperBound(bounds []int, i, fallback int) int {
	at := sort.SearchInts(bounds, i+1)
	if at == len(bounds) {
		return fallback
	}

	return bounds[at]
}

func lowerBound(bounds []int, i int) int {
	at := sort.SearchInts(bounds, i+1)
	if at == 0 {
		return 0
	}

	return bounds[at-1]
}

func traceIndex(bounds []int, i int) (int, error) {
	at := sort.SearchInts(bounds, i+1)
	if i < 0 || at == len(bounds) {
		return 0, fmt.Errorf("%w: %d not in %v", ErrTraceIndex, i, bounds)
	}

	return at, nil
}

// Rotate shifts the symbols cyclically right by one.
func (c *Configuration) Rotate() {
	n := len(c.Symbols)
	if n < 2 {
		return
	}
	last := c.Symbols[n-1]
	copy(c.Symbols[1:], c.Symbols[:n-1])
	c.Symbols[0] = last
}

// Normalize rotates c until it starts with Forward and ends with Backward.
// A sequence lacking either symbol is left untouched.
func (c *Configuration) Normalize() {
	if !slices.Contains(c.Symbols, Forward) || !slices.Contains(c.Symbols, Backward) {
		return
	}
	for c.Symbols[0] != Forward || c.Symbols[len(c.Symbols)-1] == Forward {
		c.Rotate()
	}
}

// RotationEqual reports whether o equals c up to a cyclic rotation.
func (c *Configuration) RotationEqual(o *Configuration) bool {
	n := len(c.Symbols)
	if n != len(o.Symbols) {
		return false
	}
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if c.Symbols[(i+shift)%n] != o.Symbols[i] {
				match = false

				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// overlay writes sub's symbols after the current last trace, appends a
// bound and multiplies the prefactors.
func (c *Configuration) overlay(sub *Configuration) error {
	from := 0
	if len(c.TraceBounds) > 0 {
		from = c.TraceBounds[len(c.TraceBounds)-1]
	}
	to := from + sub.Len()
	if to > c.Len() {
		return fmt.Errorf("%w: %s at %d into length %d", ErrOverflow, sub, from, c.Len())
	}
	copy(c.Symbols[from:to], sub.Symbols)
	c.TraceBounds = append(c.TraceBounds, to)
	c.Prefactor.Mul(c.Prefactor, sub.Prefactor)

	return nil
}

// clone copies symbols, bounds and prefactor; paths are not copied.
func (c *Configuration) clone() *Configuration {
	return &Configuration{
		Symbols:     slices.Clone(c.Symbols),
		TraceBounds: slices.Clone(c.TraceBounds),
		Prefactor:   new(big.Rat).Set(c.Prefactor),
	}
}

// String renders the symbols with a '.' between traces, e.g. "ppmm.pm".
func (c *Configuration) String() string {
	var sb strings.Builder
	t := 0
	for i, s := range c.Symbols {
		if t < len(c.TraceBounds) && i == c.TraceBounds[t] {
			sb.WriteByte('.')
			t++
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}
