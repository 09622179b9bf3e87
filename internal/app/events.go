package app

import "tractor/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventRoundStarted    EventKind = "round_started"
	EventCardDealt       EventKind = "card_dealt"
	EventDealFinished    EventKind = "deal_finished"
	EventPlayerDeclared  EventKind = "player_declared"
	EventTrumpFinalized  EventKind = "trump_finalized"
	EventBottomGiven     EventKind = "bottom_given"
	EventBottomSet       EventKind = "bottom_set"
	EventPlayStarted     EventKind = "play_started"
	EventPlayerPlayed    EventKind = "player_played"
	EventTrickEnded      EventKind = "trick_ended"
	EventRoundEnded      EventKind = "round_ended"
	EventPlayerView      EventKind = "player_view"
)

// Event is a game event with optional targeted recipients. Recipients are
// seat indices; empty means broadcast to the whole table.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int
}

type RoundStartedPayload struct {
	TrumpRank    domain.Rank
	BottomPlayer int
	FirstRound   bool
	Levels       []domain.Rank
}

type CardDealtPayload struct {
	Player    int
	Card      domain.Card
	Remaining int
}

type DealFinishedPayload struct {
	DeclarationOpen bool
}

type PlayerDeclaredPayload struct {
	Player int
	Cards  []domain.Card
}

type TrumpFinalizedPayload struct {
	Trump        domain.Trump
	BottomPlayer int
}

type BottomGivenPayload struct {
	Player int
	Cards  []domain.Card
}

type BottomSetPayload struct {
	Player int
	Cards  []domain.Card
}

type PlayStartedPayload struct {
	Leader int
}

type PlayerPlayedPayload struct {
	Player   int
	Cards    []domain.Card
	NextTurn int
}

type TrickEndedPayload struct {
	Winner int
	Points int
	Totals []int
}

type RoundEndedPayload struct {
	Deltas       []int
	Levels       []domain.Rank
	BottomPlayer int
	Points       []int
}
