package domain

// PlayerView is the state of a round as one player is allowed to see it:
// their own hand, everyone's public counts and plays, never another hand or
// the undealt deck.
type PlayerView struct {
	Player       int
	Status       Status
	Trump        Trump
	TrumpFixed   bool
	Hand         []Card
	HandSizes    []int
	Board        [][]Card
	LastTrick    [][]Card
	Turn         int
	TrickFirst   int
	Declaration  *Declaration
	BottomPlayer int
	BottomSize   int
	Points       []int
	Undealt      int
}

// PlayerView projects the round for one player.
func (r *Round) PlayerView(player int) PlayerView {
	sizes := make([]int, r.numPlayers)
	for p := range r.hands {
		sizes[p] = len(r.hands[p])
	}
	board := make([][]Card, r.numPlayers)
	for p, play := range r.board {
		board[p] = append([]Card(nil), play...)
	}
	var last [][]Card
	if r.lastTrick != nil {
		last = make([][]Card, r.numPlayers)
		for p, play := range r.lastTrick {
			last[p] = append([]Card(nil), play...)
		}
	}
	undealt := len(r.deck) - r.bottomSize
	if undealt < 0 {
		undealt = 0
	}
	return PlayerView{
		Player:       player,
		Status:       r.status,
		Trump:        r.trump,
		TrumpFixed:   r.trumpFixed,
		Hand:         DisplaySorted(r.hands[player], r.trump),
		HandSizes:    sizes,
		Board:        board,
		LastTrick:    last,
		Turn:         r.turn,
		TrickFirst:   r.trickFirst,
		Declaration:  r.CurrentDeclaration(),
		BottomPlayer: r.bottomPlayer,
		BottomSize:   r.bottomSize,
		Points:       append([]int(nil), r.points...),
		Undealt:      undealt,
	}
}

// NumPlayers returns the table size.
func (r *Round) NumPlayers() int { return r.numPlayers }

// NumDecks returns how many physical decks are in play.
func (r *Round) NumDecks() int { return r.numDecks }

// BottomSize returns the size of the buried bottom.
func (r *Round) BottomSize() int { return r.bottomSize }

// Status returns the round's lifecycle stage.
func (r *Round) Status() Status { return r.status }

// Turn returns whose action is expected next.
func (r *Round) Turn() int { return r.turn }

// Trump returns the current trump. Before FinalizeDeclaration the suit is
// provisional.
func (r *Round) Trump() Trump { return r.trump }

// TrumpFixed reports whether the declaration window has closed.
func (r *Round) TrumpFixed() bool { return r.trumpFixed }

// Hand returns a copy of the player's hand.
func (r *Round) Hand(player int) []Card {
	return append([]Card(nil), r.hands[player]...)
}

// Board returns a copy of the current trick's plays, indexed by player; nil
// entries have not played yet.
func (r *Round) Board() [][]Card {
	out := make([][]Card, r.numPlayers)
	for p, play := range r.board {
		out[p] = append([]Card(nil), play...)
	}
	return out
}

// TrickFirstPlayer returns the current trick's leader, or -1 between tricks.
func (r *Round) TrickFirstPlayer() int { return r.trickFirst }

// TrickSuit returns the suit of the first card led this trick.
func (r *Round) TrickSuit() Suit { return r.trickSuit }

// LedForm returns the tractors of the current trick's lead.
func (r *Round) LedForm() []Tractor {
	return append([]Tractor(nil), r.ledForm...)
}

// CurrentDeclaration returns the standing declaration, or nil.
func (r *Round) CurrentDeclaration() *Declaration {
	if len(r.declarations) == 0 {
		return nil
	}
	d := r.declarations[len(r.declarations)-1]
	d.Cards = append([]Card(nil), d.Cards...)
	return &d
}

// BottomPlayer returns the seat receiving and burying the bottom.
func (r *Round) BottomPlayer() int { return r.bottomPlayer }

// Bottom returns a copy of the buried bottom.
func (r *Round) Bottom() []Card {
	return append([]Card(nil), r.bottom...)
}

// Points returns each player's captured points so far.
func (r *Round) Points() []int {
	return append([]int(nil), r.points...)
}

// LevelDeltas returns per-player level gains; nil before the round ends.
func (r *Round) LevelDeltas() []int {
	return append([]int(nil), r.levelDeltas...)
}

// NextBottomPlayer returns next round's bottom seat, or -1 before the round
// ends.
func (r *Round) NextBottomPlayer() int { return r.nextBottom }

// IsAttacker reports whether the seat attacks this round (the bottom
// player's team defends; teams are seat parities).
func (r *Round) IsAttacker(player int) bool { return r.isAttacker(player) }
