package arena

// Ref names a slot in an Arena. It pairs the slot index with the
// generation the slot had when the Ref was issued, so a Ref outlives
// growth of the backing store but not the freeing of its slot.
//
// The zero Ref is never valid and is used by callers as a "none" sentinel.
type Ref struct {
	index uint32
	gen   uint32
}

// Index returns the slot index the Ref points at. Two Refs for the same
// slot across a free/reuse cycle share an index but differ in generation.
func (r Ref) Index() int { return int(r.index) }

// Generation returns the generation embedded in the Ref. Issued Refs
// always carry odd generations.
func (r Ref) Generation() uint32 { return r.gen }

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool { return r == Ref{} }
