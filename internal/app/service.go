package app

import (
	"errors"
	"math/rand"
	"time"

	"tractor/internal/domain"
)

var (
	ErrUnsupportedPlayers = errors.New("unsupported player count")
	ErrRoundInProgress    = errors.New("round already in progress")
	ErrNoRound            = errors.New("no round in progress")
)

// Phase is the stage of the multi-round game.
type Phase string

const (
	// PhaseScore is the between-rounds stage, including before the first round.
	PhaseScore Phase = "score"
	// PhaseRound means a round is live.
	PhaseRound Phase = "round"
)

// Game is the long-lived table aggregate: per-seat levels carried across
// rounds, the rotating bottom seat and the current round.
type Game struct {
	NumPlayers   int
	Levels       []domain.Rank
	BottomPlayer int
	FirstRound   bool
	Phase        Phase
	Round        *domain.Round

	dealCooldown int
	declareTicks int
	windowOpen   bool
}

// Config tunes round pacing. Intervals are counted in Advance calls.
type Config struct {
	// DealInterval is the number of Advance calls between dealt cards.
	DealInterval int
	// DeclareWindow is how long the declaration stays open once dealing is
	// done. Every new declaration reopens the full window.
	DeclareWindow int
	// FixtureDeck, when set, replaces shuffling; cards are listed in deal
	// order.
	FixtureDeck []domain.Card
}

// Service contains game use-cases operating on the Game aggregate.
type Service struct {
	rng *rand.Rand
	cfg Config
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand, cfg Config) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.DealInterval < 1 {
		cfg.DealInterval = 1
	}
	if cfg.DeclareWindow < 1 {
		cfg.DeclareWindow = 1
	}
	return &Service{rng: rng, cfg: cfg}
}

// NewGame creates a table with every seat starting at level 2.
func (s *Service) NewGame(numPlayers int) (*Game, error) {
	if _, ok := domain.BottomSizeForPlayers(numPlayers); !ok {
		return nil, ErrUnsupportedPlayers
	}
	return &Game{
		NumPlayers: numPlayers,
		Levels:     make([]domain.Rank, numPlayers),
		FirstRound: true,
		Phase:      PhaseScore,
	}, nil
}

// StartRound deals a fresh round at the bottom seat's level.
func (s *Service) StartRound(g *Game) ([]Event, error) {
	if g.Phase == PhaseRound {
		return nil, ErrRoundInProgress
	}
	numDecks := domain.NumDecksForPlayers(g.NumPlayers)
	var deck []domain.Card
	if len(s.cfg.FixtureDeck) > 0 {
		deck = domain.DealOrder(s.cfg.FixtureDeck)
	} else {
		deck = domain.ShuffleDeck(s.rng, domain.NewDeck(numDecks))
	}
	r, err := domain.NewRound(g.NumPlayers, g.Levels[g.BottomPlayer], g.BottomPlayer, g.FirstRound, deck)
	if err != nil {
		return nil, err
	}
	g.Round = r
	g.Phase = PhaseRound
	g.dealCooldown = 0
	g.windowOpen = false
	return []Event{{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			TrumpRank:    g.Levels[g.BottomPlayer],
			BottomPlayer: g.BottomPlayer,
			FirstRound:   g.FirstRound,
			Levels:       append([]domain.Rank(nil), g.Levels...),
		},
	}}, nil
}

// Advance moves time forward by one tick: it paces dealing and closes the
// declaration window once it runs out, or immediately when the standing
// declaration cannot be beaten.
func (s *Service) Advance(g *Game) ([]Event, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, nil
	}
	r := g.Round
	if r.Status() != domain.StatusDealing {
		return nil, nil
	}
	if !r.DealComplete() {
		if g.dealCooldown > 0 {
			g.dealCooldown--
			return nil, nil
		}
		player, card, err := r.DealNext()
		if err != nil {
			return nil, err
		}
		g.dealCooldown = s.cfg.DealInterval - 1
		events := []Event{{
			Kind:       EventCardDealt,
			Payload:    CardDealtPayload{Player: player, Card: card, Remaining: r.PlayerView(player).Undealt},
			Recipients: []int{player},
		}}
		if r.DealComplete() {
			g.windowOpen = true
			g.declareTicks = s.cfg.DeclareWindow
			events = append(events, Event{
				Kind:    EventDealFinished,
				Payload: DealFinishedPayload{DeclarationOpen: true},
			})
		}
		return events, nil
	}
	if !g.windowOpen {
		return nil, nil
	}
	if r.DeclarationMaximal() {
		g.declareTicks = 0
	}
	if g.declareTicks > 0 {
		g.declareTicks--
		return nil, nil
	}
	g.windowOpen = false
	return s.finalize(g)
}

func (s *Service) finalize(g *Game) ([]Event, error) {
	r := g.Round
	picked, err := r.FinalizeDeclaration()
	if err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind:    EventTrumpFinalized,
			Payload: TrumpFinalizedPayload{Trump: r.Trump(), BottomPlayer: r.BottomPlayer()},
		},
		{
			Kind:       EventBottomGiven,
			Payload:    BottomGivenPayload{Player: r.BottomPlayer(), Cards: picked},
			Recipients: []int{r.BottomPlayer()},
		},
	}, nil
}

// Declare claims the trump for a seat. A successful claim reopens the full
// overturn window.
func (s *Service) Declare(g *Game, player int, cards []domain.Card) ([]Event, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, ErrNoRound
	}
	if err := g.Round.Declare(player, cards); err != nil {
		return nil, err
	}
	if g.windowOpen {
		g.declareTicks = s.cfg.DeclareWindow
	}
	return []Event{{
		Kind:    EventPlayerDeclared,
		Payload: PlayerDeclaredPayload{Player: player, Cards: cards},
	}}, nil
}

// SetBottom buries the bottom and opens trick play.
func (s *Service) SetBottom(g *Game, player int, cards []domain.Card) ([]Event, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, ErrNoRound
	}
	if err := g.Round.SetBottom(player, cards); err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind:       EventBottomSet,
			Payload:    BottomSetPayload{Player: player, Cards: cards},
			Recipients: []int{player},
		},
		{
			Kind:    EventPlayStarted,
			Payload: PlayStartedPayload{Leader: g.Round.Turn()},
		},
	}, nil
}

// Play plays cards for a seat, resolving tricks and, on the last trick, the
// round: levels advance, the bottom seat rotates and the game returns to the
// score phase.
func (s *Service) Play(g *Game, player int, cards []domain.Card) ([]Event, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, ErrNoRound
	}
	r := g.Round
	res, err := r.Play(player, cards)
	if err != nil {
		return nil, err
	}
	events := []Event{{
		Kind:    EventPlayerPlayed,
		Payload: PlayerPlayedPayload{Player: player, Cards: cards, NextTurn: r.Turn()},
	}}
	if !res.TrickComplete {
		return events, nil
	}
	events = append(events, Event{
		Kind:    EventTrickEnded,
		Payload: TrickEndedPayload{Winner: res.TrickWinner, Points: res.TrickPoints, Totals: r.Points()},
	})
	if !res.RoundEnded {
		return events, nil
	}
	deltas := r.LevelDeltas()
	for p := range g.Levels {
		g.Levels[p] = advanceLevel(g.Levels[p], deltas[p])
	}
	g.BottomPlayer = r.NextBottomPlayer()
	g.FirstRound = false
	g.Phase = PhaseScore
	events = append(events, Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Deltas:       deltas,
			Levels:       append([]domain.Rank(nil), g.Levels...),
			BottomPlayer: g.BottomPlayer,
			Points:       r.Points(),
		},
	})
	return events, nil
}

// Advisor computes suggested actions for a seat without mutating the round.
type Advisor interface {
	PickPlay(r *domain.Round, seat int) ([]domain.Card, error)
	PickBottom(r *domain.Round, seat int) ([]domain.Card, error)
}

// SuggestPlay asks the advisor what the seat should play right now.
func (s *Service) SuggestPlay(g *Game, adv Advisor, player int) ([]domain.Card, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, ErrNoRound
	}
	return adv.PickPlay(g.Round, player)
}

// SuggestBottom asks the advisor what the seat should bury.
func (s *Service) SuggestBottom(g *Game, adv Advisor, player int) ([]domain.Card, error) {
	if g.Phase != PhaseRound || g.Round == nil {
		return nil, ErrNoRound
	}
	return adv.PickBottom(g.Round, player)
}

// Snapshots returns one full per-seat view event per player.
func (s *Service) Snapshots(g *Game) []Event {
	if g.Round == nil {
		return nil
	}
	events := make([]Event, 0, g.NumPlayers)
	for p := 0; p < g.NumPlayers; p++ {
		events = append(events, Event{
			Kind:       EventPlayerView,
			Payload:    g.Round.PlayerView(p),
			Recipients: []int{p},
		})
	}
	return events
}

// advanceLevel moves a level up by delta ranks, wrapping past the ace back
// to two.
func advanceLevel(r domain.Rank, delta int) domain.Rank {
	return domain.Rank((int(r) + delta) % int(domain.RankA+1))
}
