package domain

import "testing"

func flushOf(t *testing.T, cards string, trickSuit Suit, trump Trump) Flush {
	t.Helper()
	return NewFlush(CardsToTractors(mustCards(t, cards), trickSuit, trump))
}

func TestFlushStrengthOrder(t *testing.T) {
	// Trick suit spades; each case is checked under a hearts-A trump and a
	// suitless A trump.
	hA := Trump{Suit: SuitHearts, Rank: RankA}
	jokerA := Trump{Suit: SuitJoker, Rank: RankA}
	tests := []struct {
		name           string
		lesser, bigger string
		jokerLesser    string
		jokerBigger    string
	}{
		{
			name:   "same suit, higher value wins",
			lesser: "2s", bigger: "5s",
			jokerLesser: "2s", jokerBigger: "5s",
		},
		{
			name:   "trick suit beats lowest suit",
			lesser: "5d", bigger: "5s",
			jokerLesser: "5d", jokerBigger: "5s",
		},
		{
			name:   "trump beats trick suit, but only while a trump suit exists",
			lesser: "5s", bigger: "5h",
			jokerLesser: "5h", jokerBigger: "5s",
		},
		{
			name:   "trump rank outranks the trump suit",
			lesser: "2h", bigger: "As",
			jokerLesser: "2h", jokerBigger: "As",
		},
		{
			name:   "pairs of singles compare by the top card",
			lesser: "4s 7s", bigger: "2s 8s",
			jokerLesser: "4s 7s", jokerBigger: "2s 8s",
		},
		{
			name:   "trump pair of singles beats trick suit",
			lesser: "4s 7s", bigger: "4h 7h",
			jokerLesser: "4h 7h", jokerBigger: "4s 7s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesser := flushOf(t, tt.lesser, SuitSpades, hA)
			bigger := flushOf(t, tt.bigger, SuitSpades, hA)
			if !bigger.Beats(lesser) || lesser.Beats(bigger) {
				t.Errorf("h-A trump: want %q to beat %q", tt.bigger, tt.lesser)
			}
			lesser = flushOf(t, tt.jokerLesser, SuitSpades, jokerA)
			bigger = flushOf(t, tt.jokerBigger, SuitSpades, jokerA)
			if !bigger.Beats(lesser) || lesser.Beats(bigger) {
				t.Errorf("joker-A trump: want %q to beat %q", tt.jokerBigger, tt.jokerLesser)
			}
		})
	}
}

func TestFlushEqual(t *testing.T) {
	hA := Trump{Suit: SuitHearts, Rank: RankA}
	jokerA := Trump{Suit: SuitJoker, Rank: RankA}
	tests := []struct {
		name      string
		a, b      string
		wantSuit  bool
		wantJoker bool
	}{
		{
			name: "off-suit trump ranks are interchangeable",
			a:    "As", b: "Ac",
			wantSuit: true, wantJoker: true,
		},
		{
			name: "the exact trump card outranks off-suit trump ranks",
			a:    "As", b: "Ah",
			wantSuit: false, wantJoker: true,
		},
		{
			name: "pairs of off-suit trump ranks",
			a:    "As Ac", b: "Ah Ad",
			wantSuit: false, wantJoker: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flushOf(t, tt.a, SuitSpades, hA).Equal(flushOf(t, tt.b, SuitSpades, hA)); got != tt.wantSuit {
				t.Errorf("h-A trump: Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.wantSuit)
			}
			if got := flushOf(t, tt.a, SuitSpades, jokerA).Equal(flushOf(t, tt.b, SuitSpades, jokerA)); got != tt.wantJoker {
				t.Errorf("joker-A trump: Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.wantJoker)
			}
		})
	}
}

func TestFlushComparatorConsistency(t *testing.T) {
	// Equal flushes must not beat each other in either direction.
	trump := Trump{Suit: SuitHearts, Rank: RankA}
	a := flushOf(t, "Kd", SuitSpades, trump)
	b := flushOf(t, "Kd", SuitSpades, trump)
	if a.Beats(b) || b.Beats(a) {
		t.Error("equal flushes beat each other")
	}
	if !a.Equal(b) {
		t.Error("equal flushes not Equal")
	}
}

func TestFlushBeatsPanicsOnShapeMismatch(t *testing.T) {
	trump := Trump{Suit: SuitHearts, Rank: RankA}
	a := flushOf(t, "2s 4s", SuitSpades, trump)
	b := flushOf(t, "2s", SuitSpades, trump)
	defer func() {
		if recover() == nil {
			t.Error("Beats did not panic on mismatched flush sizes")
		}
	}()
	a.Beats(b)
}
