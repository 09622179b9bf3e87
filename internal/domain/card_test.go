package domain

import (
	"strings"
	"testing"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return cards
}

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return c
}

func cardsString(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, s := range []string{"2c", "10s", "Kh", "Ad", "smalljoker", "bigjoker"} {
		c, err := ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		if got := c.String(); got != s {
			t.Errorf("ParseCard(%q).String() = %q", s, got)
		}
	}
	for _, s := range []string{"", "x", "1s", "2x", "joker"} {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q) succeeded, want error", s)
		}
	}
}

func TestIsTrump(t *testing.T) {
	trump := Trump{Suit: SuitHearts, Rank: Rank2}
	tests := []struct {
		card string
		want bool
	}{
		{"3s", false},
		{"3h", true},
		{"2s", true},
		{"smalljoker", true},
		{"bigjoker", true},
	}
	for _, tt := range tests {
		if got := mustCard(t, tt.card).IsTrump(trump); got != tt.want {
			t.Errorf("%s.IsTrump(h-2) = %v, want %v", tt.card, got, tt.want)
		}
	}
}

func TestSuitPower(t *testing.T) {
	s8 := Trump{Suit: SuitSpades, Rank: Rank8}
	joker8 := Trump{Suit: SuitJoker, Rank: Rank8}
	sA := Trump{Suit: SuitSpades, Rank: RankA}
	tests := []struct {
		name  string
		trump Trump
		card  string
		want  int
	}{
		{"below trump rank keeps index", s8, "2s", 0},
		{"above trump rank shifts down", s8, "9s", 6},
		{"ace compacts to the top natural level", s8, "As", 11},
		{"off-suit trump rank", s8, "8d", 12},
		{"exact trump card", s8, "8s", 13},
		{"small joker", s8, "smalljoker", 14},
		{"big joker", s8, "bigjoker", 15},
		{"joker trump levels all trump ranks", joker8, "8d", 13},
		{"joker trump exactless", joker8, "8s", 13},
		{"trump rank ace, king compacts", sA, "Ks", 11},
		{"trump rank ace, off-suit ace", sA, "Ah", 12},
		{"trump rank ace, exact", sA, "As", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustCard(t, tt.card).SuitPower(tt.trump); got != tt.want {
				t.Errorf("%s.SuitPower(%v-%v) = %d, want %d", tt.card, tt.trump.Suit, tt.trump.Rank, got, tt.want)
			}
		})
	}
}

func TestSuitPowerAdjacency(t *testing.T) {
	// The levels around the trump rank close up so runs can cross it.
	trump := Trump{Suit: SuitSpades, Rank: Rank3}
	lo := mustCard(t, "2c").SuitPower(trump)
	hi := mustCard(t, "4c").SuitPower(trump)
	if hi != lo+1 {
		t.Errorf("2c/4c powers = %d/%d, want adjacent", lo, hi)
	}
	// Trump suit ace sits directly below the off-suit trump-rank level.
	trump = Trump{Suit: SuitSpades, Rank: Rank8}
	if a, b := mustCard(t, "As").SuitPower(trump), mustCard(t, "8h").SuitPower(trump); b != a+1 {
		t.Errorf("As/8h powers = %d/%d, want adjacent", a, b)
	}
}

func TestDisplaySorted(t *testing.T) {
	tests := []struct {
		name  string
		trump Trump
		in    string
		want  string
	}{
		{
			"trump suit ace before off-suit trump rank",
			Trump{Suit: SuitSpades, Rank: Rank3},
			"bigjoker As 3h",
			"As 3h bigjoker",
		},
		{
			"exact trump card between off-suit ranks and jokers",
			Trump{Suit: SuitSpades, Rank: Rank3},
			"bigjoker As 3s 3h",
			"As 3h 3s bigjoker",
		},
		{
			"jokers stay on top",
			Trump{Suit: SuitSpades, Rank: Rank2},
			"smalljoker bigjoker 3h",
			"3h smalljoker bigjoker",
		},
		{
			"non-trump suit sorts below the trump block",
			Trump{Suit: SuitClubs, Rank: Rank3},
			"Kc 8d 3h",
			"8d Kc 3h",
		},
		{
			"trump rank card moves to the trump block",
			Trump{Suit: SuitDiamonds, Rank: Rank2},
			"Kc 2c 10c",
			"10c Kc 2c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplaySorted(mustCards(t, tt.in), tt.trump)
			if cardsString(got) != tt.want {
				t.Errorf("DisplaySorted(%q) = %q, want %q", tt.in, cardsString(got), tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		cards string
		want  int
	}{
		{"", 0},
		{"5c", 5},
		{"10d Kh", 20},
		{"5s 5h 10c Ks 2d As", 30},
		{"smalljoker bigjoker", 0},
	}
	for _, tt := range tests {
		if got := Points(mustCards(t, tt.cards)); got != tt.want {
			t.Errorf("Points(%q) = %d, want %d", tt.cards, got, tt.want)
		}
	}
}
