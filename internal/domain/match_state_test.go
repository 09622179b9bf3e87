package domain

import "testing"

func TestPlayerViewHidesOtherHands(t *testing.T) {
	trump := Trump{Suit: SuitSpades, Rank: Rank2}
	r := trickRound(trump, 0, 0, parseHands(t, []string{
		"5c 5c Kc",
		"6c 6c 7c",
		"3d 4d 5d",
		"3h 4h 5h",
	}))
	v := r.PlayerView(1)
	if v.Player != 1 {
		t.Errorf("view player = %d, want 1", v.Player)
	}
	if got := cardsString(v.Hand); got != "6c 6c 7c" {
		t.Errorf("view hand = %q, want player 1's own sorted hand", got)
	}
	for p, size := range v.HandSizes {
		if size != 3 {
			t.Errorf("hand size[%d] = %d, want 3", p, size)
		}
	}
	if v.Status != StatusPlaying || v.Turn != 0 || v.TrickFirst != -1 {
		t.Errorf("view state = %+v, want playing, turn 0, no trick", v)
	}
}

func TestPlayerViewBoardAndCopySafety(t *testing.T) {
	trump := Trump{Suit: SuitSpades, Rank: Rank2}
	r := trickRound(trump, 0, 0, parseHands(t, []string{
		"5c 5c",
		"6c 6c",
		"3d 4d",
		"3h 4h",
	}))
	if _, err := r.Play(0, mustCards(t, "5c 5c")); err != nil {
		t.Fatalf("lead: %v", err)
	}
	v := r.PlayerView(2)
	if got := cardsString(v.Board[0]); got != "5c 5c" {
		t.Errorf("board[0] = %q, want the lead", got)
	}
	if v.Board[1] != nil {
		t.Errorf("board[1] = %v, want nil before playing", v.Board[1])
	}
	// Mutating the view must not reach round state.
	v.Board[0][0] = mustCard(t, "As")
	v.Hand = nil
	if got := cardsString(r.Board()[0]); got != "5c 5c" {
		t.Errorf("round board changed through the view: %q", got)
	}
	if got := len(r.Hand(2)); got != 2 {
		t.Errorf("round hand changed through the view: %d cards", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	trump := Trump{Suit: SuitSpades, Rank: Rank2}
	r := trickRound(trump, 0, 0, parseHands(t, []string{
		"5c 5c", "6c 6c", "3d 4d", "3h 4h",
	}))
	hand := r.Hand(0)
	hand[0] = mustCard(t, "As")
	if got := cardsString(r.Hand(0)); got != "5c 5c" {
		t.Errorf("Hand() aliases round state: %q", got)
	}
	pts := r.Points()
	pts[0] = 99
	if r.Points()[0] != 0 {
		t.Error("Points() aliases round state")
	}
}
