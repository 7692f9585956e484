package position

// Equal reports whether p and q denote the same displacement, ignoring
// trailing zeros.
func (p Pos) Equal(q Pos) bool {
	return p.Compare(q) == 0
}

// Compare orders positions lexicographically, padding the shorter one with
// zeros. It returns -1, 0 or +1.
func (p Pos) Compare(q Pos) int {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		a, b := p.At(i), q.At(i)
		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Less is the padded lexicographic order of Compare.
func (p Pos) Less(q Pos) bool {
	return p.Compare(q) < 0
}

// StrictLess is the raw lexicographic order over stored components, where a
// proper prefix sorts first. Unlike Less it distinguishes {1} from {1,0}.
func (p Pos) StrictLess(q Pos) bool {
	n := min(len(p), len(q))
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}

	return len(p) < len(q)
}

// AbsLess orders positions lexicographically by absolute component value,
// padding the shorter one with zeros.
func AbsLess(p, q Pos) bool {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		a, b := abs(p.At(i)), abs(q.At(i))
		if a != b {
			return a < b
		}
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
