package domain

import (
	"fmt"
	"strings"
	"testing"
)

// tractorSpec describes an expected tractor by its shape, lowest card and
// bucket; the power is derived from the card so specs stay readable.
type tractorSpec struct {
	rank, length int
	powerCard    string
	suitType     SuitType
}

func wantTractors(t *testing.T, trump Trump, specs []tractorSpec) []Tractor {
	t.Helper()
	out := make([]Tractor, len(specs))
	for i, s := range specs {
		out[i] = Tractor{
			Rank:     s.rank,
			Length:   s.length,
			Power:    mustCard(t, s.powerCard).SuitPower(trump),
			SuitType: s.suitType,
		}
	}
	return out
}

func sameTractors(got []Tractor, want []Tractor) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		g, w := got[i], want[i]
		if g.Rank != w.Rank || g.Length != w.Length || g.Power != w.Power || g.SuitType != w.SuitType {
			return false
		}
	}
	return true
}

func tractorsString(ts []Tractor) string {
	parts := make([]string, len(ts))
	for i, tr := range ts {
		parts[i] = fmt.Sprintf("%dx%d@%d/%v", tr.Rank, tr.Length, tr.Power, tr.SuitType)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func TestCardsToTractors(t *testing.T) {
	// Trick suit is clubs throughout; the cases cover grouping, not trick
	// strength. Each case is checked under a spades-8 trump and a suitless
	// 8 trump.
	s8 := Trump{Suit: SuitSpades, Rank: Rank8}
	joker8 := Trump{Suit: SuitJoker, Rank: Rank8}

	tests := []struct {
		name       string
		cards      string
		s8Want     []tractorSpec
		joker8Want []tractorSpec
	}{
		{
			name:  "same suit consecutive pairs",
			cards: "2s 2s 3s 3s",
			s8Want: []tractorSpec{
				{2, 2, "2s", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "same suit consecutive singles",
			cards: "2s 3s 4s 5s",
			s8Want: []tractorSpec{
				{1, 1, "5s", SuitTypeTrump},
				{1, 1, "4s", SuitTypeTrump},
				{1, 1, "3s", SuitTypeTrump},
				{1, 1, "2s", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "5s", SuitTypeLowest},
				{1, 1, "4s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "different suit consecutive value singles",
			cards: "2s 3d",
			s8Want: []tractorSpec{
				{1, 1, "2s", SuitTypeTrump},
				{1, 1, "3d", SuitTypeLowest},
			},
			joker8Want: []tractorSpec{
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:       "single",
			cards:      "2s",
			s8Want:     []tractorSpec{{1, 1, "2s", SuitTypeTrump}},
			joker8Want: []tractorSpec{{1, 1, "2s", SuitTypeLowest}},
		},
		{
			name:  "same suit consecutive pairs and single",
			cards: "2s 2s 3s 3s 5s",
			s8Want: []tractorSpec{
				{2, 2, "2s", SuitTypeTrump},
				{1, 1, "5s", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "5s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "different suit pair and single",
			cards: "2s 2s 3d",
			s8Want: []tractorSpec{
				{2, 1, "2s", SuitTypeTrump},
				{1, 1, "3d", SuitTypeLowest},
			},
			joker8Want: []tractorSpec{
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "same suit three consecutive pairs",
			cards: "2s 2s 3s 3s 4s 4s",
			s8Want: []tractorSpec{
				{2, 3, "2s", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "4s", SuitTypeLowest},
				{1, 1, "4s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "same suit three non-consecutive pairs",
			cards: "2s 2s 5s 5s 9s 9s",
			s8Want: []tractorSpec{
				{2, 1, "9s", SuitTypeTrump},
				{2, 1, "5s", SuitTypeTrump},
				{2, 1, "2s", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "9s", SuitTypeLowest},
				{1, 1, "9s", SuitTypeLowest},
				{1, 1, "5s", SuitTypeLowest},
				{1, 1, "5s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:  "two consecutive pairs, separate pair, big joker",
			cards: "2s 2s 3s 3s 9s 9s bigjoker",
			s8Want: []tractorSpec{
				{2, 2, "2s", SuitTypeTrump},
				{2, 1, "9s", SuitTypeTrump},
				{1, 1, "bigjoker", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{1, 1, "bigjoker", SuitTypeTrump},
				{1, 1, "9s", SuitTypeLowest},
				{1, 1, "9s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "3s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
				{1, 1, "2s", SuitTypeLowest},
			},
		},
		{
			name:       "consecutive joker pairs",
			cards:      "bigjoker bigjoker smalljoker smalljoker",
			s8Want:     []tractorSpec{{2, 2, "smalljoker", SuitTypeTrump}},
			joker8Want: []tractorSpec{{2, 2, "smalljoker", SuitTypeTrump}},
		},
		{
			name:       "exact trump pair runs into the joker pair",
			cards:      "8s 8s smalljoker smalljoker",
			s8Want:     []tractorSpec{{2, 2, "8s", SuitTypeTrump}},
			joker8Want: []tractorSpec{{2, 2, "8s", SuitTypeTrump}},
		},
		{
			name:  "off-suit trump rank pairs share a level and stay apart",
			cards: "8c 8c 8h 8h",
			s8Want: []tractorSpec{
				{2, 1, "8c", SuitTypeTrump},
				{2, 1, "8h", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{2, 1, "8c", SuitTypeTrump},
				{2, 1, "8h", SuitTypeTrump},
			},
		},
		{
			name:  "trick suit pair with off-suit consecutive value pair",
			cards: "2c 2c 3h 3h",
			s8Want: []tractorSpec{
				{2, 1, "2c", SuitTypeTrick},
				{1, 1, "3h", SuitTypeLowest},
				{1, 1, "3h", SuitTypeLowest},
			},
			joker8Want: []tractorSpec{
				{2, 1, "2c", SuitTypeTrick},
				{1, 1, "3h", SuitTypeLowest},
				{1, 1, "3h", SuitTypeLowest},
			},
		},
		{
			name:  "lowest suit pairs decompose to singles",
			cards: "2h 2h 5d 5d",
			s8Want: []tractorSpec{
				{1, 1, "5d", SuitTypeLowest},
				{1, 1, "5d", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
			},
			joker8Want: []tractorSpec{
				{1, 1, "5d", SuitTypeLowest},
				{1, 1, "5d", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
			},
		},
		{
			name:  "exact trump pair runs into an off-suit trump rank pair",
			cards: "8s 8s 8d 8d",
			s8Want: []tractorSpec{
				{2, 2, "8d", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{2, 1, "8s", SuitTypeTrump},
				{2, 1, "8d", SuitTypeTrump},
			},
		},
		{
			name:  "trump suit ace runs into the off-suit trump rank",
			cards: "As As 8h 8h",
			s8Want: []tractorSpec{
				{2, 2, "As", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{2, 1, "8h", SuitTypeTrump},
				{1, 1, "As", SuitTypeLowest},
				{1, 1, "As", SuitTypeLowest},
			},
		},
		{
			name:  "off-suit trump rank pair and joker pair",
			cards: "8c 8c smalljoker smalljoker",
			s8Want: []tractorSpec{
				{2, 1, "smalljoker", SuitTypeTrump},
				{2, 1, "8c", SuitTypeTrump},
			},
			joker8Want: []tractorSpec{
				{2, 2, "8c", SuitTypeTrump},
			},
		},
		{
			name:  "different lowest suit consecutive value pairs",
			cards: "2h 2h 3d 3d",
			s8Want: []tractorSpec{
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
			},
			joker8Want: []tractorSpec{
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "3d", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
				{1, 1, "2h", SuitTypeLowest},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := mustCards(t, tt.cards)
			got := CardsToTractors(cards, SuitClubs, s8)
			if want := wantTractors(t, s8, tt.s8Want); !sameTractors(got, want) {
				t.Errorf("s-8 trump: got %v, want %v", tractorsString(got), tractorsString(want))
			}
			got = CardsToTractors(cards, SuitClubs, joker8)
			if want := wantTractors(t, joker8, tt.joker8Want); !sameTractors(got, want) {
				t.Errorf("joker-8 trump: got %v, want %v", tractorsString(got), tractorsString(want))
			}
		})
	}
}

func TestCardsToTractorsCardsPreserved(t *testing.T) {
	trump := Trump{Suit: SuitSpades, Rank: Rank8}
	cards := mustCards(t, "2s 2s 3s 3s 9s bigjoker 8d 8d")
	var flat []Card
	for _, tr := range CardsToTractors(cards, SuitClubs, trump) {
		if len(tr.Cards) != tr.Length {
			t.Fatalf("tractor has %d rows, want %d", len(tr.Cards), tr.Length)
		}
		for _, row := range tr.Cards {
			if len(row) != tr.Rank {
				t.Fatalf("row has %d cards, want %d", len(row), tr.Rank)
			}
			flat = append(flat, row...)
		}
	}
	if len(flat) != len(cards) || !containsCards(flat, cards) {
		t.Errorf("tractor cards %v are not a permutation of %v", cardsString(flat), cardsString(cards))
	}
}

func TestTractorCompare(t *testing.T) {
	trump := Trump{Suit: SuitSpades, Rank: Rank8}
	build := func(spec tractorSpec) Tractor {
		return wantTractors(t, trump, []tractorSpec{spec})[0]
	}
	tests := []struct {
		name     string
		a, b     tractorSpec
		wantSign int
	}{
		{"rank dominates length", tractorSpec{3, 1, "2s", SuitTypeTrump}, tractorSpec{2, 3, "As", SuitTypeTrump}, 1},
		{"length breaks equal rank", tractorSpec{2, 2, "2s", SuitTypeTrump}, tractorSpec{2, 1, "As", SuitTypeTrump}, 1},
		{"suit type breaks equal shape", tractorSpec{1, 1, "2s", SuitTypeTrump}, tractorSpec{1, 1, "Ac", SuitTypeTrick}, 1},
		{"power breaks equal bucket", tractorSpec{1, 1, "2c", SuitTypeTrick}, tractorSpec{1, 1, "Ac", SuitTypeTrick}, -1},
		{"off-suit trump ranks tie", tractorSpec{2, 1, "8c", SuitTypeTrump}, tractorSpec{2, 1, "8h", SuitTypeTrump}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := build(tt.a).Compare(build(tt.b))
			switch {
			case tt.wantSign > 0 && got <= 0,
				tt.wantSign < 0 && got >= 0,
				tt.wantSign == 0 && got != 0:
				t.Errorf("Compare = %d, want sign %d", got, tt.wantSign)
			}
		})
	}
}
