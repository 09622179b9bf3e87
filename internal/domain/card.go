package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Suit identifies one of the four French suits or the joker pseudo-suit.
type Suit int8

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
	SuitJoker
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "c"
	case SuitDiamonds:
		return "d"
	case SuitHearts:
		return "h"
	case SuitSpades:
		return "s"
	case SuitJoker:
		return "joker"
	default:
		return "?"
	}
}

// Rank runs from two to ace in natural order, with the jokers above.
// The numeric value of a natural rank is its index in that order.
type Rank int8

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	RankSmallJoker
	RankBigJoker
)

// numNaturalRanks is the number of ranks in one suit (2 through A).
const numNaturalRanks = 13

// MaxNaturalPower is the suit power of the strongest non-trump card in a
// suit. With the trump rank compacted out of the order, every suit tops out
// at the same power.
const MaxNaturalPower = numNaturalRanks - 2

var rankNames = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "small", "big"}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "?"
}

// IsNatural reports whether the rank belongs to a regular suit (i.e. is not a joker rank).
func (r Rank) IsNatural() bool {
	return r >= Rank2 && r <= RankA
}

// Card is a single playing card. Joker ranks are only valid with SuitJoker.
// Cards are value types compared by (suit, rank) and copied freely.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	if c.Suit == SuitJoker {
		if c.Rank == RankBigJoker {
			return "bigjoker"
		}
		return "smalljoker"
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard decodes the short card notation used by fixtures and the wire
// format: rank string followed by a suit letter ("2c", "10s", "Kh"), or the
// literals "smalljoker" / "bigjoker".
func ParseCard(s string) (Card, error) {
	switch s {
	case "smalljoker":
		return Card{Suit: SuitJoker, Rank: RankSmallJoker}, nil
	case "bigjoker":
		return Card{Suit: SuitJoker, Rank: RankBigJoker}, nil
	}
	if len(s) < 2 {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}
	var suit Suit
	switch s[len(s)-1] {
	case 'c':
		suit = SuitClubs
	case 'd':
		suit = SuitDiamonds
	case 'h':
		suit = SuitHearts
	case 's':
		suit = SuitSpades
	default:
		return Card{}, fmt.Errorf("unknown suit in card %q", s)
	}
	name := s[:len(s)-1]
	for r := Rank2; r <= RankA; r++ {
		if rankNames[r] == name {
			return Card{Suit: suit, Rank: r}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown rank in card %q", s)
}

// ParseCards decodes a space-separated list of cards.
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Fields(s)
	cards := make([]Card, 0, len(parts))
	for _, part := range parts {
		c, err := ParseCard(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Trump identifies the round's trump rank and suit. It is card-shaped but
// never enters play: Suit is SuitJoker when nobody declared (a suitless
// trump), and Rank is always a natural rank.
type Trump struct {
	Suit Suit
	Rank Rank
}

// IsTrump reports whether the card counts as trump this round: any joker,
// any card of the trump rank, and any card of the trump suit.
func (c Card) IsTrump(t Trump) bool {
	return c.Suit == SuitJoker || c.Rank == t.Rank || c.Suit == t.Suit
}

// SuitPower is a total order over cards within one suit-type bucket, built so
// that cards able to form a consecutive run are exactly one step apart.
//
// The trump rank is removed from the natural sequence, closing the gap it
// leaves: with trump rank 3, the 2 and 4 of any suit sit on adjacent levels.
// Above the compacted naturals sit, in order, the off-suit trump-rank cards
// (all on one shared level, so e.g. 2d+2d+2s+2s can run when 2 is trump), the
// exact trump-suit trump-rank card, the small joker and the big joker. Under
// a joker trump there is no trump suit to distinguish, so every trump-rank
// card shares the single level below the small joker.
//
// Not suitable for display ordering; see DisplayIndex.
func (c Card) SuitPower(t Trump) int {
	if c.Suit == SuitJoker {
		if c.Rank == RankBigJoker {
			return numNaturalRanks + 2
		}
		return numNaturalRanks + 1
	}
	if c.Rank == t.Rank {
		if t.Suit == SuitJoker || c.Suit == t.Suit {
			return numNaturalRanks
		}
		return numNaturalRanks - 1
	}
	power := int(c.Rank)
	if c.Rank > t.Rank {
		power--
	}
	return power
}

// DisplayIndex is a total order for presenting a hand: non-trump cards grouped
// by suit in buckets of 100, all trump cards in one block from 1000 upward
// (trump-suit naturals, then off-suit trump ranks by suit, the exact trump
// card, small joker, big joker).
func (c Card) DisplayIndex(t Trump) int {
	if !c.IsTrump(t) {
		return 100*int(c.Suit) + int(c.Rank)
	}
	switch {
	case c.Suit == SuitJoker && c.Rank == RankBigJoker:
		return 1400
	case c.Suit == SuitJoker:
		return 1300
	case c.Rank == t.Rank && c.Suit == t.Suit:
		return 1200
	case c.Rank == t.Rank:
		return 1100 + int(c.Suit)
	default:
		return 1000 + int(c.Rank)
	}
}

// DisplaySorted returns a copy of cards ordered for presentation.
func DisplaySorted(cards []Card, t Trump) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayIndex(t) < out[j].DisplayIndex(t)
	})
	return out
}

// CardPoints returns the score value of a single card: fives are worth 5,
// tens and kings 10, everything else nothing.
func CardPoints(c Card) int {
	switch c.Rank {
	case Rank5:
		return 5
	case Rank10, RankK:
		return 10
	default:
		return 0
	}
}

// Points sums the score value of the given cards.
func Points(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += CardPoints(c)
	}
	return total
}
