package domain

import "sort"

// ReshapeToForm decomposes the given tractors into pieces matching the target
// shape sequence, in target order. Pieces are carved off the low-power end of
// whichever tractor can cover each shape; leftover fragments return to the
// pool for later shapes. Reports false when no decomposition exists.
func ReshapeToForm(tractors []Tractor, form []TractorMeta) ([]Tractor, bool) {
	avail := append([]Tractor(nil), tractors...)
	return matchForm(avail, form)
}

func matchForm(avail []Tractor, form []TractorMeta) ([]Tractor, bool) {
	if len(form) == 0 {
		return nil, true
	}
	want := form[0]
	for i, t := range avail {
		if t.Rank < want.Rank || t.Length < want.Length {
			continue
		}
		piece, rem := splitTractor(t, want)
		rest := make([]Tractor, 0, len(avail)-1+len(rem))
		rest = append(rest, avail[:i]...)
		rest = append(rest, avail[i+1:]...)
		rest = append(rest, rem...)
		if out, ok := matchForm(rest, form[1:]); ok {
			return append([]Tractor{piece}, out...), true
		}
	}
	return nil, false
}

// splitTractor carves a piece of the wanted shape off the low end of t and
// returns the piece plus up to two remainders: the rows above the piece at
// full rank, and the leftover copies within the piece's rows.
func splitTractor(t Tractor, want TractorMeta) (Tractor, []Tractor) {
	pieceRows := make([][]Card, want.Length)
	for i := 0; i < want.Length; i++ {
		pieceRows[i] = t.Cards[i][:want.Rank]
	}
	piece := Tractor{
		Rank:     want.Rank,
		Length:   want.Length,
		Power:    t.Power,
		SuitType: t.SuitType,
		Cards:    pieceRows,
	}
	var rem []Tractor
	if t.Length > want.Length {
		rem = append(rem, Tractor{
			Rank:     t.Rank,
			Length:   t.Length - want.Length,
			Power:    t.Power + want.Length,
			SuitType: t.SuitType,
			Cards:    t.Cards[want.Length:],
		})
	}
	if t.Rank > want.Rank {
		rows := make([][]Card, want.Length)
		for i := 0; i < want.Length; i++ {
			rows[i] = t.Cards[i][want.Rank:]
		}
		rem = append(rem, Tractor{
			Rank:     t.Rank - want.Rank,
			Length:   want.Length,
			Power:    t.Power,
			SuitType: t.SuitType,
			Cards:    rows,
		})
	}
	return piece, rem
}

// AllMultirankSubcombinations enumerates every rank>=2 piece obtainable from
// the given tractors: for each source, every sub-rank from its rank down to 2
// crossed with every sub-length and offset. Singles sources contribute
// nothing.
func AllMultirankSubcombinations(tractors []Tractor) []Tractor {
	var out []Tractor
	for _, t := range tractors {
		for r := t.Rank; r >= 2; r-- {
			for l := t.Length; l >= 1; l-- {
				for offset := 0; offset+l <= t.Length; offset++ {
					rows := make([][]Card, l)
					for i := 0; i < l; i++ {
						rows[i] = t.Cards[offset+i][:r]
					}
					out = append(out, Tractor{
						Rank:     r,
						Length:   l,
						Power:    t.Power + offset,
						SuitType: t.SuitType,
						Cards:    rows,
					})
				}
			}
		}
	}
	return out
}

// MinMeta is the componentwise minimum of two shapes.
func MinMeta(a, b TractorMeta) TractorMeta {
	out := a
	if b.Rank < out.Rank {
		out.Rank = b.Rank
	}
	if b.Length < out.Length {
		out.Length = b.Length
	}
	return out
}

func (m TractorMeta) covers(o TractorMeta) bool {
	return m.Rank >= o.Rank && m.Length >= o.Length
}

func metaLess(a, b TractorMeta) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Length < b.Length
}

func sortMetasDesc(metas []TractorMeta) {
	sort.SliceStable(metas, func(i, j int) bool {
		return metaLess(metas[j], metas[i])
	})
}

// FindSupplierIndex picks which holding shape must supply the target shape.
// A holding that fully covers the target is preferred, smallest such first,
// so large combinations survive when a smaller one suffices. Otherwise the
// holding with the largest componentwise overlap wins, so a triple is
// committed before two loose pairs when a triple was led.
func FindSupplierIndex(holding []TractorMeta, target TractorMeta) int {
	best := -1
	for i, h := range holding {
		if !h.covers(target) {
			continue
		}
		if best == -1 || metaLess(h, holding[best]) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i, h := range holding {
		if best == -1 || metaLess(MinMeta(holding[best], target), MinMeta(h, target)) {
			best = i
		}
	}
	return best
}

// ConsumeMeta removes the used shape from the front entry of the shape list,
// returning the remainders re-sorted strongest first. The used shape is
// always a componentwise piece of the front entry.
func ConsumeMeta(data []TractorMeta, used TractorMeta) []TractorMeta {
	head := data[0]
	out := append([]TractorMeta(nil), data[1:]...)
	if head.Length > used.Length {
		out = append(out, TractorMeta{Rank: head.Rank, Length: head.Length - used.Length})
	}
	if head.Rank > used.Rank {
		out = append(out, TractorMeta{Rank: head.Rank - used.Rank, Length: used.Length})
	}
	sortMetasDesc(out)
	return out
}

// consumeTractor carves the used shape out of the holding tractor at index i,
// returning the holding with the remainders in its place.
func consumeTractor(holding []Tractor, i int, used TractorMeta) []Tractor {
	_, rem := splitTractor(holding[i], used)
	out := make([]Tractor, 0, len(holding)-1+len(rem))
	out = append(out, holding[:i]...)
	out = append(out, holding[i+1:]...)
	out = append(out, rem...)
	sortTractorsDesc(out)
	return out
}

// RequiredForm computes the shapes a follower is forced to play from their
// led-bucket cards against the led shape sequence. Each step matches the
// strongest outstanding led shape against the best supplier in the holding,
// commits their componentwise overlap, and carves both sides down until the
// led shapes or the holding run out. The total card count of the result is
// min(led card count, len(suitCards)).
func RequiredForm(suitCards []Card, led []TractorMeta, trickSuit Suit, trump Trump) []TractorMeta {
	ledData := append([]TractorMeta(nil), led...)
	sortMetasDesc(ledData)
	holding := CardsToTractors(suitCards, trickSuit, trump)

	var required []TractorMeta
	for len(ledData) > 0 && len(holding) > 0 {
		target := ledData[0]
		idx := FindSupplierIndex(metasOf(holding), target)
		used := MinMeta(holding[idx].Meta(), target)
		required = append(required, used)
		holding = consumeTractor(holding, idx, used)
		ledData = ConsumeMeta(ledData, used)
	}
	sortMetasDesc(required)
	return required
}
