package domain

// containsCards reports whether hand holds every card of cards, counted as a
// multiset.
func containsCards(hand []Card, cards []Card) bool {
	need := make(map[Card]int, len(cards))
	for _, c := range cards {
		need[c]++
	}
	for _, c := range hand {
		if need[c] > 0 {
			need[c]--
		}
	}
	for _, n := range need {
		if n > 0 {
			return false
		}
	}
	return true
}

// removeCards removes the given cards from a hand, counted as a multiset, and
// returns the updated hand.
func removeCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}
	removeCounts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}
	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := removeCounts[c]; ok && n > 0 {
			removeCounts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}
