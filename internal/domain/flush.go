package domain

// Flush is a played combination expressed as its tractors, strongest first.
// Flushes compared against each other must have been reshaped to the same
// form; comparing flushes of different shape sequences is a programming
// error.
type Flush struct {
	Tractors []Tractor
}

// NewFlush builds a flush from tractors, sorting a copy strongest first.
func NewFlush(tractors []Tractor) Flush {
	ts := append([]Tractor(nil), tractors...)
	sortTractorsDesc(ts)
	return Flush{Tractors: ts}
}

// Size is the total number of cards in the flush.
func (f Flush) Size() int {
	total := 0
	for _, t := range f.Tractors {
		total += t.Size()
	}
	return total
}

// Cards returns all cards of the flush, strongest tractor first.
func (f Flush) Cards() []Card {
	out := make([]Card, 0, f.Size())
	for _, t := range f.Tractors {
		out = append(out, t.Flatten()...)
	}
	return out
}

// Equal reports whether both flushes hold equivalent tractors position by
// position.
func (f Flush) Equal(o Flush) bool {
	if len(f.Tractors) != len(o.Tractors) {
		return false
	}
	for i := range f.Tractors {
		if f.Tractors[i].Compare(o.Tractors[i]) != 0 {
			return false
		}
	}
	return true
}

// Beats reports whether f outranks o, comparing tractors lexicographically
// strongest-first. Equal flushes do not beat each other, so the earlier play
// keeps a tied trick.
func (f Flush) Beats(o Flush) bool {
	if len(f.Tractors) != len(o.Tractors) {
		panic("flush shape mismatch")
	}
	for i := range f.Tractors {
		if c := f.Tractors[i].Compare(o.Tractors[i]); c != 0 {
			return c > 0
		}
	}
	return false
}
