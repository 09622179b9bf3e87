package domain

import "sort"

// SuitType classifies a card relative to the current trick: trump cards beat
// trick-suit cards, which beat everything else.
type SuitType int8

const (
	SuitTypeLowest SuitType = iota
	SuitTypeTrick
	SuitTypeTrump
)

func (s SuitType) String() string {
	switch s {
	case SuitTypeLowest:
		return "lowest"
	case SuitTypeTrick:
		return "trick"
	case SuitTypeTrump:
		return "trump"
	default:
		return "?"
	}
}

// CardSuitType buckets a card for the current trick. Trump membership wins
// over a literal suit match, so trump-rank cards of the trick suit still
// land in the trump bucket.
func CardSuitType(c Card, trickSuit Suit, t Trump) SuitType {
	if c.IsTrump(t) {
		return SuitTypeTrump
	}
	if c.Suit == trickSuit {
		return SuitTypeLowest + 1
	}
	return SuitTypeLowest
}

// Tractor is the unit combination: Rank copies of a card repeated over Length
// consecutive power levels. Rank 1, Length 1 is a single; Rank 2, Length 1 a
// pair; Rank 2, Length 2 the classic tractor of two consecutive pairs.
//
// Cards holds one row per power level, lowest level first; every row has Rank
// cards. Power is the suit power of the lowest row.
type Tractor struct {
	Rank     int
	Length   int
	Power    int
	SuitType SuitType
	Cards    [][]Card
}

// TractorMeta is the shape of a tractor with position stripped.
type TractorMeta struct {
	Rank   int
	Length int
}

// Size is the number of cards a tractor of this shape holds.
func (m TractorMeta) Size() int {
	return m.Rank * m.Length
}

// Meta projects the tractor to its shape.
func (t Tractor) Meta() TractorMeta {
	return TractorMeta{Rank: t.Rank, Length: t.Length}
}

// Size is the number of cards in the tractor.
func (t Tractor) Size() int {
	return t.Rank * t.Length
}

// Flatten returns the tractor's cards as a flat list, lowest row first.
func (t Tractor) Flatten() []Card {
	out := make([]Card, 0, t.Size())
	for _, row := range t.Cards {
		out = append(out, row...)
	}
	return out
}

// Compare orders tractors by rank, then length, then suit type, then power.
// Returns <0 if t is weaker than o, 0 if they are equivalent, >0 if stronger.
func (t Tractor) Compare(o Tractor) int {
	if t.Rank != o.Rank {
		return t.Rank - o.Rank
	}
	if t.Length != o.Length {
		return t.Length - o.Length
	}
	if t.SuitType != o.SuitType {
		return int(t.SuitType) - int(o.SuitType)
	}
	return t.Power - o.Power
}

// sortTractorsDesc orders strongest first. The sort is stable so tractors
// that compare equal (distinct off-suit trump-rank cards share a power level)
// keep their relative order.
func sortTractorsDesc(ts []Tractor) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Compare(ts[j]) > 0
	})
}

// CardsToTractors groups cards into the maximal tractors they can form for
// the given trick. Every distinct card in the trump or trick-suit bucket
// becomes one tractor whose rank is its multiplicity; cards outside both
// buckets can never run, so they decompose to rank-1 singles. Tractors of the
// same bucket and same rank > 1 on adjacent power levels then merge into
// longer tractors. The result is sorted strongest first.
func CardsToTractors(cards []Card, trickSuit Suit, trump Trump) []Tractor {
	if len(cards) == 0 {
		return nil
	}

	distinct := make([]Card, 0, len(cards))
	counts := make(map[Card]int, len(cards))
	for _, c := range cards {
		if counts[c] == 0 {
			distinct = append(distinct, c)
		}
		counts[c]++
	}
	// Stable on power alone: cards sharing a power level keep the order they
	// appeared in, which decides ties all the way to the final output.
	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].SuitPower(trump) < distinct[j].SuitPower(trump)
	})

	var out []Tractor
	for _, c := range distinct {
		st := CardSuitType(c, trickSuit, trump)
		n := counts[c]
		if st == SuitTypeLowest {
			for i := 0; i < n; i++ {
				out = append(out, singleTractor(c, st, trump))
			}
			continue
		}
		row := make([]Card, n)
		for i := range row {
			row[i] = c
		}
		out = append(out, Tractor{
			Rank:     n,
			Length:   1,
			Power:    c.SuitPower(trump),
			SuitType: st,
			Cards:    [][]Card{row},
		})
	}

	out = mergeAdjacent(out)
	sortTractorsDesc(out)
	return out
}

func singleTractor(c Card, st SuitType, trump Trump) Tractor {
	return Tractor{
		Rank:     1,
		Length:   1,
		Power:    c.SuitPower(trump),
		SuitType: st,
		Cards:    [][]Card{{c}},
	}
}

// mergeAdjacent joins tractors of the same bucket and same rank > 1 whose
// power runs are contiguous. Input tractors all have length 1 except none;
// the scan assumes ascending power order within each (suit type, rank) group,
// which CardsToTractors guarantees. Equal powers never merge.
func mergeAdjacent(ts []Tractor) []Tractor {
	type groupKey struct {
		st   SuitType
		rank int
	}
	groups := make(map[groupKey][]Tractor)
	var order []groupKey
	var out []Tractor
	for _, t := range ts {
		if t.Rank < 2 {
			out = append(out, t)
			continue
		}
		k := groupKey{st: t.SuitType, rank: t.Rank}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}
	for _, k := range order {
		run := groups[k]
		cur := run[0]
		for _, next := range run[1:] {
			if next.Power == cur.Power+cur.Length {
				cur.Length += next.Length
				cur.Cards = append(cur.Cards, next.Cards...)
				continue
			}
			out = append(out, cur)
			cur = next
		}
		out = append(out, cur)
	}
	return out
}

// metasOf projects a tractor list to its shape sequence.
func metasOf(ts []Tractor) []TractorMeta {
	out := make([]TractorMeta, len(ts))
	for i, t := range ts {
		out[i] = t.Meta()
	}
	return out
}

// CardCount sums the card counts of the given shapes.
func CardCount(metas []TractorMeta) int {
	total := 0
	for _, m := range metas {
		total += m.Size()
	}
	return total
}
