package wilson

// Visitor receives a depth-first walk over terms: EnterTerm, one
// VisitSegment per segment in order, ExitTerm.
type Visitor interface {
	EnterTerm(w *String)
	VisitSegment(s Segment)
	ExitTerm(w *String)
}

// Accept walks w with v.
func (w *String) Accept(v Visitor) {
	v.EnterTerm(w)
	for _, s := range w.Segments {
		v.VisitSegment(s)
	}
	v.ExitTerm(w)
}

// Walk visits every term in order.
func Walk(terms []*String, v Visitor) {
	for _, w := range terms {
		w.Accept(v)
	}
}
