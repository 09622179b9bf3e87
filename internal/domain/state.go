package domain

import (
	"errors"
	"fmt"
)

// Status is the lifecycle stage of a round.
type Status string

const (
	// StatusDealing covers dealing and the declaration window.
	StatusDealing Status = "dealing"
	// StatusBottom is the bottom exchange by the bottom player.
	StatusBottom Status = "bottom"
	// StatusPlaying is trick play.
	StatusPlaying Status = "playing"
	// StatusEnded means all cards are played and scores are settled.
	StatusEnded Status = "ended"
)

var (
	ErrOutOfSequence      = errors.New("action out of sequence")
	ErrInvalidDeclaration = errors.New("invalid declaration")
	ErrInvalidBottom      = errors.New("invalid bottom")
	ErrInvalidPlay        = errors.New("invalid play")
)

// Declaration is a trump claim made during dealing.
type Declaration struct {
	Player int
	Cards  []Card
}

// declarationTier orders declaration card kinds: suited trump rank, then
// small jokers, then big jokers.
func declarationTier(c Card) int {
	switch {
	case c.Suit != SuitJoker:
		return 0
	case c.Rank == RankSmallJoker:
		return 1
	default:
		return 2
	}
}

// Round is one full round of play for a fixed table: dealing with trump
// declarations, the bottom exchange, trick play and final scoring. All
// methods reject invalid actions with a sentinel error and leave the state
// untouched.
type Round struct {
	numPlayers int
	numDecks   int
	bottomSize int
	firstRound bool

	deck   []Card
	hands  [][]Card
	bottom []Card

	trump        Trump
	trumpFixed   bool
	declarations []Declaration
	bottomPlayer int

	status     Status
	turn       int
	trickFirst int
	trickSuit  Suit
	ledForm    []Tractor
	board      [][]Card
	lastTrick  [][]Card

	points      []int
	levelDeltas []int
	nextBottom  int
}

// NewRound starts a round. The deck is consumed from the back card by card;
// the last bottomSize cards become the bottom. trumpRank is the round's level
// rank; bottomPlayer deals first and, outside the first round, receives the
// bottom. In the first round the first declarer takes the bottom instead.
func NewRound(numPlayers int, trumpRank Rank, bottomPlayer int, firstRound bool, deck []Card) (*Round, error) {
	bottomSize, ok := BottomSizeForPlayers(numPlayers)
	if !ok {
		return nil, fmt.Errorf("unsupported player count %d", numPlayers)
	}
	if !trumpRank.IsNatural() {
		return nil, fmt.Errorf("trump rank %v is not a natural rank", trumpRank)
	}
	if bottomPlayer < 0 || bottomPlayer >= numPlayers {
		return nil, fmt.Errorf("bottom player %d out of range", bottomPlayer)
	}
	numDecks := NumDecksForPlayers(numPlayers)
	if want := numDecks * DeckSize; len(deck) != want {
		return nil, fmt.Errorf("deck has %d cards, want %d", len(deck), want)
	}

	r := &Round{
		numPlayers:   numPlayers,
		numDecks:     numDecks,
		bottomSize:   bottomSize,
		firstRound:   firstRound,
		deck:         append([]Card(nil), deck...),
		hands:        make([][]Card, numPlayers),
		trump:        Trump{Suit: SuitJoker, Rank: trumpRank},
		bottomPlayer: bottomPlayer,
		status:       StatusDealing,
		turn:         bottomPlayer,
		trickFirst:   -1,
		board:        make([][]Card, numPlayers),
		points:       make([]int, numPlayers),
		nextBottom:   -1,
	}
	return r, nil
}

// DealNext hands the next card to the player whose turn it is and returns the
// recipient and card. Fails once only the bottom remains.
func (r *Round) DealNext() (player int, card Card, err error) {
	if r.status != StatusDealing || r.DealComplete() {
		return 0, Card{}, ErrOutOfSequence
	}
	card = r.deck[len(r.deck)-1]
	r.deck = r.deck[:len(r.deck)-1]
	player = r.turn
	r.hands[player] = append(r.hands[player], card)
	r.turn = (r.turn + 1) % r.numPlayers
	return player, card, nil
}

// DealComplete reports whether every card outside the bottom has been dealt.
func (r *Round) DealComplete() bool {
	return len(r.deck) <= r.bottomSize
}

// Declare claims the trump suit with cards from the player's hand. The cards
// must be identical copies of a trump-rank card or of a joker, at most one
// per physical deck. A single joker cannot be declared. Overturning another
// player requires a strictly stronger claim by (count, kind); raising your
// own standing claim requires more copies of the same card. Defending a claim
// that was overturned requires more copies of your original card than you
// showed before, and at least as many cards as the standing claim.
func (r *Round) Declare(player int, cards []Card) error {
	if r.status != StatusDealing || r.trumpFixed {
		return ErrOutOfSequence
	}
	if player < 0 || player >= r.numPlayers {
		return fmt.Errorf("%w: no such player %d", ErrInvalidDeclaration, player)
	}
	if len(cards) == 0 || len(cards) > r.numDecks {
		return fmt.Errorf("%w: must show between 1 and %d cards", ErrInvalidDeclaration, r.numDecks)
	}
	c := cards[0]
	for _, other := range cards[1:] {
		if other != c {
			return fmt.Errorf("%w: cards must be identical", ErrInvalidDeclaration)
		}
	}
	if c.Suit == SuitJoker {
		if len(cards) == 1 {
			return fmt.Errorf("%w: a lone joker cannot fix the trump", ErrInvalidDeclaration)
		}
	} else if c.Rank != r.trump.Rank {
		return fmt.Errorf("%w: rank %v is not the trump rank", ErrInvalidDeclaration, c.Rank)
	}
	if !containsCards(r.hands[player], cards) {
		return fmt.Errorf("%w: cards not in hand", ErrInvalidDeclaration)
	}

	if len(r.declarations) > 0 {
		standing := r.declarations[len(r.declarations)-1]
		if standing.Player == player {
			if err := r.checkRaise(standing, cards); err != nil {
				return err
			}
		} else if err := r.checkOverturn(player, standing, cards); err != nil {
			return err
		}
	}

	r.declarations = append(r.declarations, Declaration{
		Player: player,
		Cards:  append([]Card(nil), cards...),
	})
	return nil
}

func (r *Round) checkRaise(standing Declaration, cards []Card) error {
	if cards[0] != standing.Cards[0] {
		return fmt.Errorf("%w: can only raise with the same card", ErrInvalidDeclaration)
	}
	if len(cards) <= len(standing.Cards) {
		return fmt.Errorf("%w: raise needs more copies", ErrInvalidDeclaration)
	}
	return nil
}

func (r *Round) checkOverturn(player int, standing Declaration, cards []Card) error {
	if prior := r.ownDeclaration(player); prior != nil && prior.Cards[0] == cards[0] {
		// Defending an overturned claim with more copies of the same card.
		if len(cards) > len(prior.Cards) && len(cards) >= len(standing.Cards) {
			return nil
		}
	}
	if len(cards) != len(standing.Cards) {
		if len(cards) > len(standing.Cards) {
			return nil
		}
		return fmt.Errorf("%w: fewer cards than the standing declaration", ErrInvalidDeclaration)
	}
	if declarationTier(cards[0]) > declarationTier(standing.Cards[0]) {
		return nil
	}
	return fmt.Errorf("%w: not stronger than the standing declaration", ErrInvalidDeclaration)
}

func (r *Round) ownDeclaration(player int) *Declaration {
	for i := len(r.declarations) - 1; i >= 0; i-- {
		if r.declarations[i].Player == player {
			return &r.declarations[i]
		}
	}
	return nil
}

// DeclarationMaximal reports whether the standing declaration cannot be
// overturned by anyone, so the declaration window may close early.
func (r *Round) DeclarationMaximal() bool {
	if len(r.declarations) == 0 {
		return false
	}
	standing := r.declarations[len(r.declarations)-1]
	return len(standing.Cards) == r.numDecks && declarationTier(standing.Cards[0]) == 2
}

// FinalizeDeclaration closes the declaration window once dealing is done. The
// trump suit becomes the standing declaration's suit, or stays suitless when
// nobody declared or jokers won. In the first round the declarer takes over
// as bottom player. The bottom cards move to the bottom player's hand; the
// returned slice is what they picked up.
func (r *Round) FinalizeDeclaration() ([]Card, error) {
	if r.status != StatusDealing || !r.DealComplete() || r.trumpFixed {
		return nil, ErrOutOfSequence
	}
	if len(r.declarations) > 0 {
		standing := r.declarations[len(r.declarations)-1]
		if c := standing.Cards[0]; c.Suit != SuitJoker {
			r.trump.Suit = c.Suit
		}
		if r.firstRound {
			r.bottomPlayer = standing.Player
		}
	}
	r.trumpFixed = true
	r.status = StatusBottom

	picked := append([]Card(nil), r.deck...)
	r.deck = nil
	r.hands[r.bottomPlayer] = append(r.hands[r.bottomPlayer], picked...)
	return picked, nil
}

// SetBottom buries the chosen cards from the bottom player's hand and opens
// trick play with the bottom player leading.
func (r *Round) SetBottom(player int, cards []Card) error {
	if r.status != StatusBottom {
		return ErrOutOfSequence
	}
	if player != r.bottomPlayer {
		return fmt.Errorf("%w: only the bottom player may bury", ErrInvalidBottom)
	}
	if len(cards) != r.bottomSize {
		return fmt.Errorf("%w: need exactly %d cards", ErrInvalidBottom, r.bottomSize)
	}
	if !containsCards(r.hands[player], cards) {
		return fmt.Errorf("%w: cards not in hand", ErrInvalidBottom)
	}
	r.hands[player] = removeCards(r.hands[player], cards)
	r.bottom = append([]Card(nil), cards...)
	r.status = StatusPlaying
	r.turn = r.bottomPlayer
	r.trickFirst = -1
	return nil
}

// PlayResult reports what a successful Play caused.
type PlayResult struct {
	TrickComplete bool
	TrickWinner   int
	TrickPoints   int
	RoundEnded    bool
}

// Play plays cards for the player whose turn it is. A lead must form exactly
// one tractor; a follow must match the led card count and satisfy follow-suit
// forcing. Completing a trick resolves the winner, accrues its points and
// passes the lead; the last trick also settles the round.
func (r *Round) Play(player int, cards []Card) (PlayResult, error) {
	if r.status != StatusPlaying {
		return PlayResult{}, ErrOutOfSequence
	}
	if player != r.turn {
		return PlayResult{}, fmt.Errorf("%w: not player %d's turn", ErrInvalidPlay, player)
	}
	if len(cards) == 0 {
		return PlayResult{}, fmt.Errorf("%w: empty play", ErrInvalidPlay)
	}
	if !containsCards(r.hands[player], cards) {
		return PlayResult{}, fmt.Errorf("%w: cards not in hand", ErrInvalidPlay)
	}

	if r.trickFirst == -1 {
		suit := cards[0].Suit
		led := CardsToTractors(cards, suit, r.trump)
		if len(led) != 1 {
			return PlayResult{}, fmt.Errorf("%w: a lead must form a single combination", ErrInvalidPlay)
		}
		r.trickFirst = player
		r.trickSuit = suit
		r.ledForm = led
	} else {
		if err := r.checkFollow(player, cards); err != nil {
			return PlayResult{}, err
		}
	}

	r.hands[player] = removeCards(r.hands[player], cards)
	r.board[player] = append([]Card(nil), cards...)
	r.turn = (r.turn + 1) % r.numPlayers

	if r.turn != r.trickFirst {
		return PlayResult{}, nil
	}
	return r.resolveTrick(), nil
}

// checkFollow enforces follow-suit forcing: the play must match the led card
// count, spend exactly the required number of led-bucket cards, and those
// cards must reshape to the required form.
func (r *Round) checkFollow(player int, cards []Card) error {
	ledCount := 0
	for _, t := range r.ledForm {
		ledCount += t.Size()
	}
	if len(cards) != ledCount {
		return fmt.Errorf("%w: must play %d cards", ErrInvalidPlay, ledCount)
	}

	ledType := r.ledForm[0].SuitType
	handSuit := filterBySuitType(r.hands[player], ledType, r.trickSuit, r.trump)
	playSuit := filterBySuitType(cards, ledType, r.trickSuit, r.trump)

	required := RequiredForm(handSuit, metasOf(r.ledForm), r.trickSuit, r.trump)
	if len(playSuit) != CardCount(required) {
		return fmt.Errorf("%w: must follow with %d cards of the led suit", ErrInvalidPlay, CardCount(required))
	}
	if len(required) == 0 {
		return nil
	}
	played := CardsToTractors(playSuit, r.trickSuit, r.trump)
	if _, ok := ReshapeToForm(played, required); !ok {
		return fmt.Errorf("%w: play does not match the forced combination shapes", ErrInvalidPlay)
	}
	return nil
}

func (r *Round) resolveTrick() PlayResult {
	winner := r.DetermineWinner()
	pts := 0
	for _, play := range r.board {
		pts += Points(play)
	}
	r.points[winner] += pts

	r.lastTrick = r.board
	r.board = make([][]Card, r.numPlayers)
	r.trickFirst = -1
	r.ledForm = nil
	r.turn = winner

	res := PlayResult{TrickComplete: true, TrickWinner: winner, TrickPoints: pts}
	if len(r.hands[winner]) == 0 {
		r.settle(winner)
		res.RoundEnded = true
	}
	return res
}

// DetermineWinner picks the strongest play on the board: plays that cannot
// reshape to the led form are out, the rest compare as flushes and the
// earliest play keeps ties.
func (r *Round) DetermineWinner() int {
	ledMetas := metasOf(r.ledForm)
	best := r.trickFirst
	bestFlush := NewFlush(r.ledForm)
	for i := 1; i < r.numPlayers; i++ {
		p := (r.trickFirst + i) % r.numPlayers
		if r.board[p] == nil {
			continue
		}
		tractors := CardsToTractors(r.board[p], r.trickSuit, r.trump)
		reshaped, ok := ReshapeToForm(tractors, ledMetas)
		if !ok {
			continue
		}
		if f := NewFlush(reshaped); f.Beats(bestFlush) {
			best = p
			bestFlush = f
		}
	}
	return best
}

// settle computes level deltas and the next bottom seat. Teams are seat
// parities relative to the bottom player: the bottom player's team defends.
// Attackers taking the last trick double the buried bottom's points.
func (r *Round) settle(lastWinner int) {
	if r.isAttacker(lastWinner) {
		r.points[lastWinner] += 2 * Points(r.bottom)
	}
	attackerPts := 0
	for p := 0; p < r.numPlayers; p++ {
		if r.isAttacker(p) {
			attackerPts += r.points[p]
		}
	}

	threshold := PointsPerPlayer * r.numPlayers
	var delta int
	var winnersAttack bool
	if attackerPts >= threshold {
		winnersAttack = true
		delta = (attackerPts-threshold)/LevelBandPoints + 1
		r.nextBottom = (r.bottomPlayer + 1) % r.numPlayers
	} else {
		winnersAttack = false
		if attackerPts == 0 {
			delta = 3
		} else {
			delta = (threshold-attackerPts-1)/LevelBandPoints + 1
		}
		r.nextBottom = (r.bottomPlayer + 2) % r.numPlayers
	}

	r.levelDeltas = make([]int, r.numPlayers)
	for p := 0; p < r.numPlayers; p++ {
		if r.isAttacker(p) == winnersAttack {
			r.levelDeltas[p] = delta
		}
	}
	r.status = StatusEnded
}

func (r *Round) isAttacker(player int) bool {
	return (player-r.bottomPlayer+r.numPlayers)%2 == 1
}

func filterBySuitType(cards []Card, st SuitType, trickSuit Suit, trump Trump) []Card {
	var out []Card
	for _, c := range cards {
		if CardSuitType(c, trickSuit, trump) == st {
			out = append(out, c)
		}
	}
	return out
}
