package nakama

import (
	"fmt"

	"tractor/internal/app"
	"tractor/internal/domain"
)

// cardDTO is the wire form of a card: a suit letter plus a rank string, for
// example {"suit":"s","rank":"10"} or {"suit":"joker","rank":"big"}.
type cardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func cardToDTO(c domain.Card) cardDTO {
	return cardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func cardFromDTO(d cardDTO) (domain.Card, error) {
	if d.Suit == "joker" {
		return domain.ParseCard(d.Rank + "joker")
	}
	return domain.ParseCard(d.Rank + d.Suit)
}

func cardsToDTO(cards []domain.Card) []cardDTO {
	out := make([]cardDTO, len(cards))
	for i, c := range cards {
		out[i] = cardToDTO(c)
	}
	return out
}

func cardsFromDTO(dtos []cardDTO) ([]domain.Card, error) {
	out := make([]domain.Card, len(dtos))
	for i, d := range dtos {
		c, err := cardFromDTO(d)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func boardToDTO(board [][]domain.Card) [][]cardDTO {
	out := make([][]cardDTO, len(board))
	for i, play := range board {
		if play == nil {
			continue
		}
		out[i] = cardsToDTO(play)
	}
	return out
}

func ranksToDTO(ranks []domain.Rank) []string {
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.String()
	}
	return out
}

type trumpDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func trumpToDTO(t domain.Trump) trumpDTO {
	return trumpDTO{Suit: t.Suit.String(), Rank: t.Rank.String()}
}

type declarationDTO struct {
	Player int       `json:"player"`
	Cards  []cardDTO `json:"cards"`
}

// cardsRequest is the payload for declare, set-bottom and play messages.
type cardsRequest struct {
	Cards []cardDTO `json:"cards"`
}

type roundStartedDTO struct {
	TrumpRank    string   `json:"trump_rank"`
	BottomPlayer int      `json:"bottom_player"`
	FirstRound   bool     `json:"first_round"`
	Levels       []string `json:"levels"`
}

type cardDealtDTO struct {
	Player    int     `json:"player"`
	Card      cardDTO `json:"card"`
	Remaining int     `json:"remaining"`
}

type dealFinishedDTO struct {
	DeclarationOpen bool `json:"declaration_open"`
}

type playerDeclaredDTO struct {
	Player int       `json:"player"`
	Cards  []cardDTO `json:"cards"`
}

type trumpFinalizedDTO struct {
	Trump        trumpDTO `json:"trump"`
	BottomPlayer int      `json:"bottom_player"`
}

type bottomCardsDTO struct {
	Player int       `json:"player"`
	Cards  []cardDTO `json:"cards"`
}

type playStartedDTO struct {
	Leader int `json:"leader"`
}

type playerPlayedDTO struct {
	Player   int       `json:"player"`
	Cards    []cardDTO `json:"cards"`
	NextTurn int       `json:"next_turn"`
}

type trickEndedDTO struct {
	Winner int   `json:"winner"`
	Points int   `json:"points"`
	Totals []int `json:"totals"`
}

type roundEndedDTO struct {
	Deltas       []int    `json:"deltas"`
	Levels       []string `json:"levels"`
	BottomPlayer int      `json:"bottom_player"`
	Points       []int    `json:"points"`
}

type playerViewDTO struct {
	Player       int             `json:"player"`
	Status       string          `json:"status"`
	Trump        trumpDTO        `json:"trump"`
	TrumpFixed   bool            `json:"trump_fixed"`
	Hand         []cardDTO       `json:"hand"`
	HandSizes    []int           `json:"hand_sizes"`
	Board        [][]cardDTO     `json:"board"`
	LastTrick    [][]cardDTO     `json:"last_trick"`
	Turn         int             `json:"turn"`
	TrickFirst   int             `json:"trick_first"`
	Declaration  *declarationDTO `json:"declaration"`
	BottomPlayer int             `json:"bottom_player"`
	BottomSize   int             `json:"bottom_size"`
	Points       []int           `json:"points"`
	Undealt      int             `json:"undealt"`
}

type suggestionDTO struct {
	Kind  string    `json:"kind"` // "play" or "bottom"
	Cards []cardDTO `json:"cards"`
}

type gameErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type seatStateDTO struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot"`
	Level       string `json:"level"`
}

type matchStateDTO struct {
	Seats     []string       `json:"seats"`
	OwnerSeat int            `json:"owner_seat"`
	Open      int            `json:"open"`
	Phase     string         `json:"phase"`
	Players   []seatStateDTO `json:"players"`
}

func viewToDTO(v domain.PlayerView) playerViewDTO {
	out := playerViewDTO{
		Player:       v.Player,
		Status:       string(v.Status),
		Trump:        trumpToDTO(v.Trump),
		TrumpFixed:   v.TrumpFixed,
		Hand:         cardsToDTO(v.Hand),
		HandSizes:    v.HandSizes,
		Board:        boardToDTO(v.Board),
		LastTrick:    boardToDTO(v.LastTrick),
		Turn:         v.Turn,
		TrickFirst:   v.TrickFirst,
		BottomPlayer: v.BottomPlayer,
		BottomSize:   v.BottomSize,
		Points:       v.Points,
		Undealt:      v.Undealt,
	}
	if v.Declaration != nil {
		out.Declaration = &declarationDTO{
			Player: v.Declaration.Player,
			Cards:  cardsToDTO(v.Declaration.Cards),
		}
	}
	return out
}

// eventToMessage maps an app event to its opcode and wire payload.
func eventToMessage(ev app.Event) (int64, interface{}, error) {
	switch ev.Kind {
	case app.EventRoundStarted:
		p := ev.Payload.(app.RoundStartedPayload)
		return OpRoundStarted, roundStartedDTO{
			TrumpRank:    p.TrumpRank.String(),
			BottomPlayer: p.BottomPlayer,
			FirstRound:   p.FirstRound,
			Levels:       ranksToDTO(p.Levels),
		}, nil
	case app.EventCardDealt:
		p := ev.Payload.(app.CardDealtPayload)
		return OpCardDealt, cardDealtDTO{Player: p.Player, Card: cardToDTO(p.Card), Remaining: p.Remaining}, nil
	case app.EventDealFinished:
		p := ev.Payload.(app.DealFinishedPayload)
		return OpDealFinished, dealFinishedDTO{DeclarationOpen: p.DeclarationOpen}, nil
	case app.EventPlayerDeclared:
		p := ev.Payload.(app.PlayerDeclaredPayload)
		return OpPlayerDeclared, playerDeclaredDTO{Player: p.Player, Cards: cardsToDTO(p.Cards)}, nil
	case app.EventTrumpFinalized:
		p := ev.Payload.(app.TrumpFinalizedPayload)
		return OpTrumpFinalized, trumpFinalizedDTO{Trump: trumpToDTO(p.Trump), BottomPlayer: p.BottomPlayer}, nil
	case app.EventBottomGiven:
		p := ev.Payload.(app.BottomGivenPayload)
		return OpBottomGiven, bottomCardsDTO{Player: p.Player, Cards: cardsToDTO(p.Cards)}, nil
	case app.EventBottomSet:
		p := ev.Payload.(app.BottomSetPayload)
		return OpBottomSet, bottomCardsDTO{Player: p.Player, Cards: cardsToDTO(p.Cards)}, nil
	case app.EventPlayStarted:
		p := ev.Payload.(app.PlayStartedPayload)
		return OpPlayStarted, playStartedDTO{Leader: p.Leader}, nil
	case app.EventPlayerPlayed:
		p := ev.Payload.(app.PlayerPlayedPayload)
		return OpPlayerPlayed, playerPlayedDTO{Player: p.Player, Cards: cardsToDTO(p.Cards), NextTurn: p.NextTurn}, nil
	case app.EventTrickEnded:
		p := ev.Payload.(app.TrickEndedPayload)
		return OpTrickEnded, trickEndedDTO{Winner: p.Winner, Points: p.Points, Totals: p.Totals}, nil
	case app.EventRoundEnded:
		p := ev.Payload.(app.RoundEndedPayload)
		return OpRoundEnded, roundEndedDTO{
			Deltas:       p.Deltas,
			Levels:       ranksToDTO(p.Levels),
			BottomPlayer: p.BottomPlayer,
			Points:       p.Points,
		}, nil
	case app.EventPlayerView:
		p := ev.Payload.(domain.PlayerView)
		return OpPlayerView, viewToDTO(p), nil
	default:
		return 0, nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}
