package position

// Pos is a relative lattice displacement. The zero value (nil) is the origin.
type Pos []int

// Clone returns an independent copy of p.
func (p Pos) Clone() Pos {
	if p == nil {
		return nil
	}
	out := make(Pos, len(p))
	copy(out, p)

	return out
}

// At returns component i, zero beyond the stored length.
func (p Pos) At(i int) int {
	if i < 0 || i >= len(p) {
		return 0
	}

	return p[i]
}

// Shift moves p by one unit along the axis encoded by the signed label.
// A zero label leaves p untouched.
func (p *Pos) Shift(step int) {
	if step == 0 {
		return
	}
	axis, unit := step-1, 1
	if step < 0 {
		axis, unit = -step-1, -1
	}
	p.grow(axis + 1)
	(*p)[axis] += unit
}

// Walk shifts p by every label in steps, in order.
func (p *Pos) Walk(steps []int) {
	for _, s := range steps {
		p.Shift(s)
	}
}

// Add adds q component-wise to p.
func (p *Pos) Add(q Pos) {
	p.grow(len(q))
	for i, v := range q {
		(*p)[i] += v
	}
}

// Sub subtracts q component-wise from p.
func (p *Pos) Sub(q Pos) {
	p.grow(len(q))
	for i, v := range q {
		(*p)[i] -= v
	}
}

// IsZero reports whether every component is zero.
func (p Pos) IsZero() bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}

	return true
}

func (p *Pos) grow(n int) {
	if n <= len(*p) {
		return
	}
	if n <= cap(*p) {
		old := len(*p)
		*p = (*p)[:n]
		for i := old; i < n; i++ {
			(*p)[i] = 0
		}

		return
	}
	grown := make(Pos, n)
	copy(grown, *p)
	*p = grown
}
