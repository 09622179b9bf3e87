package domain

import "math/rand"

// DeckSize is the number of cards in one physical deck, jokers included.
const DeckSize = 54

var bottomSizes = map[int]int{4: 8, 5: 8, 6: 6}

// NumDecksForPlayers returns how many physical decks a table uses.
func NumDecksForPlayers(numPlayers int) int {
	return numPlayers / 2
}

// BottomSizeForPlayers returns the size of the face-down bottom for a player
// count, and whether the count is supported.
func BottomSizeForPlayers(numPlayers int) (int, bool) {
	n, ok := bottomSizes[numPlayers]
	return n, ok
}

// NewDeck builds numDecks full decks in a fixed order.
func NewDeck(numDecks int) []Card {
	out := make([]Card, 0, numDecks*DeckSize)
	for d := 0; d < numDecks; d++ {
		for s := SuitClubs; s <= SuitSpades; s++ {
			for r := Rank2; r <= RankA; r++ {
				out = append(out, Card{Suit: s, Rank: r})
			}
		}
		out = append(out,
			Card{Suit: SuitJoker, Rank: RankSmallJoker},
			Card{Suit: SuitJoker, Rank: RankBigJoker},
		)
	}
	return out
}

// ShuffleDeck returns a shuffled copy of the deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := append([]Card(nil), deck...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// DealOrder reverses the given card list so that dealing by popping from the
// back hands the cards out in listed order. Fixture decks are written in deal
// order; this converts them to stack order.
func DealOrder(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[len(cards)-1-i] = c
	}
	return out
}
