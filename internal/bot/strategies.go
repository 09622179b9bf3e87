package bot

import (
	"fmt"
	"math/rand"
	"sort"

	"tractor/internal/domain"
)

// pickerFunc selects cards for one forced shape. exact holds combinations of
// exactly the wanted shape, larger holds combinations that can be cut down to
// it.
type pickerFunc func(want domain.TractorMeta, exact, larger []domain.Tractor) []domain.Card

// PickerBot plays with a picker policy per trick: feed points when its side
// already holds the trick, otherwise contest with its strongest conforming
// cards and fall back to its cheapest ones. A timid bot never contests.
//
// Like the board it looks at, the bot has no memory of earlier tricks.
type PickerBot struct {
	Timid bool

	rng *rand.Rand
}

func NewPickerBot(rng *rand.Rand, timid bool) *PickerBot {
	return &PickerBot{Timid: timid, rng: rng}
}

// PickPlay computes the cards to play for the seat on turn.
func (b *PickerBot) PickPlay(r *domain.Round, seat int) ([]domain.Card, error) {
	if r.Status() != domain.StatusPlaying {
		return nil, fmt.Errorf("no trick in progress")
	}
	if r.Turn() != seat {
		return nil, fmt.Errorf("seat %d is not on turn", seat)
	}
	if r.LedForm() == nil {
		return b.pickLead(r, seat), nil
	}
	return b.pickFollow(r, seat), nil
}

// pickLead opens a trick: the highest natural card in some plain suit first,
// then the biggest multi-card combination, then the cheapest trump, then the
// highest card left.
func (b *PickerBot) pickLead(r *domain.Round, seat int) []domain.Card {
	trump := r.Trump()
	tractors := handTractors(r.Hand(seat), trump)

	for _, t := range tractors {
		if t.SuitType != domain.SuitTypeTrump && t.Power == domain.MaxNaturalPower {
			return t.Flatten()
		}
	}

	var best *domain.Tractor
	for i, t := range tractors {
		if t.Rank == 1 && t.Length == 1 {
			continue
		}
		if best == nil || t.Rank > best.Rank || (t.Rank == best.Rank && t.Length > best.Length) {
			best = &tractors[i]
		}
	}
	if best != nil {
		return best.Flatten()
	}

	for i, t := range tractors {
		if t.SuitType != domain.SuitTypeTrump {
			continue
		}
		if best == nil || t.Power < best.Power {
			best = &tractors[i]
		}
	}
	if best != nil {
		return best.Flatten()
	}

	for i, t := range tractors {
		if best == nil || t.Power > best.Power {
			best = &tractors[i]
		}
	}
	return best.Flatten()
}

func (b *PickerBot) pickFollow(r *domain.Round, seat int) []domain.Card {
	trump := r.Trump()
	trickSuit := r.TrickSuit()
	led := r.LedForm()
	hand := r.Hand(seat)

	winner := r.DetermineWinner()
	allyWinning := winner != seat && r.IsAttacker(winner) == r.IsAttacker(seat)

	if allyWinning {
		return applyPicker(hand, led, trickSuit, trump, pointsPicker)
	}

	if !b.Timid {
		high := applyPicker(hand, led, trickSuit, trump, highPicker)
		tractors := domain.CardsToTractors(high, trickSuit, trump)
		if reshaped, ok := domain.ReshapeToForm(tractors, metasOf(led)); ok {
			winning := winningFlush(r, winner)
			if f := domain.NewFlush(reshaped); f.Beats(winning) {
				return high
			}
		}
	}

	return applyPicker(hand, led, trickSuit, trump, lowPicker)
}

// PickBottom selects the cards to bury: loose non-trump singles cheapest
// first, topped up with random cards when there are not enough.
func (b *PickerBot) PickBottom(r *domain.Round, seat int) ([]domain.Card, error) {
	hand := r.Hand(seat)
	n := r.BottomSize()
	if len(hand) < n {
		return nil, fmt.Errorf("hand has %d cards, bottom needs %d", len(hand), n)
	}
	trump := r.Trump()

	rest := append([]domain.Card(nil), hand...)
	var selected []domain.Card
	for _, t := range handTractors(hand, trump) {
		if t.Rank > 1 || t.Length > 1 || t.SuitType == domain.SuitTypeTrump {
			continue
		}
		c := t.Cards[0][0]
		selected = append(selected, c)
		rest = removeAll(rest, []domain.Card{c})
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].SuitPower(trump) < selected[j].SuitPower(trump)
	})
	for len(selected) < n {
		i := b.rng.Intn(len(rest))
		selected = append(selected, rest[i])
		rest = append(rest[:i], rest[i+1:]...)
	}
	return selected[:n], nil
}

// applyPicker builds a play against the led form: it walks the led shapes
// strongest first, commits the forced shape from the led-bucket holding and
// lets the picker choose which cards fill it, then tops the play up with
// single cards from the rest of the hand.
func applyPicker(hand []domain.Card, led []domain.Tractor, trickSuit domain.Suit, trump domain.Trump, pick pickerFunc) []domain.Card {
	pickHand := append([]domain.Card(nil), hand...)
	ledType := led[0].SuitType
	ledData := metasOf(led)

	var picked []domain.Card
	for len(ledData) > 0 {
		var suitCards []domain.Card
		for _, c := range pickHand {
			if domain.CardSuitType(c, trickSuit, trump) == ledType {
				suitCards = append(suitCards, c)
			}
		}
		suitTractors := domain.CardsToTractors(suitCards, trickSuit, trump)
		if len(suitTractors) == 0 {
			break
		}
		idx := domain.FindSupplierIndex(metasOf(suitTractors), ledData[0])
		want := domain.MinMeta(ledData[0], suitTractors[idx].Meta())

		var exact, larger []domain.Tractor
		for _, t := range suitTractors {
			switch {
			case t.Rank == want.Rank && t.Length == want.Length:
				exact = append(exact, t)
			case t.Rank >= want.Rank && t.Length >= want.Length:
				larger = append(larger, t)
			}
		}
		cur := pick(want, exact, larger)
		picked = append(picked, cur...)
		pickHand = removeAll(pickHand, cur)
		ledData = domain.ConsumeMeta(ledData, want)
	}

	ledCount := 0
	for _, t := range led {
		ledCount += t.Size()
	}
	for len(picked) < ledCount && len(pickHand) > 0 {
		exact := make([]domain.Tractor, 0, len(pickHand))
		for _, c := range pickHand {
			exact = append(exact, domain.Tractor{
				Rank:     1,
				Length:   1,
				Power:    c.SuitPower(trump),
				SuitType: domain.CardSuitType(c, trickSuit, trump),
				Cards:    [][]domain.Card{{c}},
			})
		}
		cur := pick(domain.TractorMeta{Rank: 1, Length: 1}, exact, nil)
		picked = append(picked, cur...)
		pickHand = removeAll(pickHand, cur)
	}
	return picked
}

// tractorSplits lists the pieces of the wanted shape obtainable from a larger
// combination, one per power offset.
func tractorSplits(large domain.Tractor, want domain.TractorMeta) []domain.Tractor {
	var out []domain.Tractor
	for i := 0; i+want.Length <= large.Length; i++ {
		rows := make([][]domain.Card, want.Length)
		for j := 0; j < want.Length; j++ {
			rows[j] = large.Cards[i+j][:want.Rank]
		}
		out = append(out, domain.Tractor{
			Rank:     want.Rank,
			Length:   want.Length,
			Power:    large.Power + i,
			SuitType: large.SuitType,
			Cards:    rows,
		})
	}
	return out
}

// cmpPicker picks the best candidate under the given preference, cutting
// larger combinations down to the wanted shape when no exact one exists.
func cmpPicker(want domain.TractorMeta, exact, larger []domain.Tractor, better func(a, b domain.Tractor) bool) []domain.Card {
	var best *domain.Tractor
	for i := range exact {
		if best == nil || better(exact[i], *best) {
			best = &exact[i]
		}
	}
	if best != nil {
		return best.Flatten()
	}
	for _, t := range larger {
		for _, s := range tractorSplits(t, want) {
			s := s
			if best == nil || better(s, *best) {
				best = &s
			}
		}
	}
	if best == nil {
		return nil
	}
	return best.Flatten()
}

func lowPicker(want domain.TractorMeta, exact, larger []domain.Tractor) []domain.Card {
	return cmpPicker(want, exact, larger, func(a, b domain.Tractor) bool {
		pa, pb := domain.Points(a.Flatten()), domain.Points(b.Flatten())
		if pa != pb {
			return pa < pb
		}
		return a.Compare(b) < 0
	})
}

func highPicker(want domain.TractorMeta, exact, larger []domain.Tractor) []domain.Card {
	return cmpPicker(want, exact, larger, func(a, b domain.Tractor) bool {
		return a.Compare(b) > 0
	})
}

// pointsPicker prefers the candidate worth the most points, falling back to
// the cheapest cards when nothing carries points.
func pointsPicker(want domain.TractorMeta, exact, larger []domain.Tractor) []domain.Card {
	bestPoints := 0
	var best []domain.Card
	for _, t := range exact {
		cards := t.Flatten()
		if p := domain.Points(cards); p > bestPoints {
			bestPoints = p
			best = cards
		}
	}
	if best != nil {
		return best
	}
	for _, t := range larger {
		for _, s := range tractorSplits(t, want) {
			cards := s.Flatten()
			if p := domain.Points(cards); p > bestPoints {
				bestPoints = p
				best = cards
			}
		}
	}
	if best != nil {
		return best
	}
	return lowPicker(want, exact, larger)
}

// handTractors groups a whole hand for leading or burying: each plain suit is
// grouped on its own so pairs and runs stay intact, trumps are grouped
// together.
func handTractors(hand []domain.Card, trump domain.Trump) []domain.Tractor {
	bySuit := make(map[domain.Suit][]domain.Card)
	var trumps []domain.Card
	for _, c := range hand {
		if c.IsTrump(trump) {
			trumps = append(trumps, c)
			continue
		}
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	var out []domain.Tractor
	for s := domain.SuitClubs; s <= domain.SuitSpades; s++ {
		out = append(out, domain.CardsToTractors(bySuit[s], s, trump)...)
	}
	out = append(out, domain.CardsToTractors(trumps, domain.SuitJoker, trump)...)
	return out
}

// winningFlush reshapes the current best play to the led form for comparison.
func winningFlush(r *domain.Round, winner int) domain.Flush {
	tractors := domain.CardsToTractors(r.Board()[winner], r.TrickSuit(), r.Trump())
	reshaped, _ := domain.ReshapeToForm(tractors, metasOf(r.LedForm()))
	return domain.NewFlush(reshaped)
}

func metasOf(tractors []domain.Tractor) []domain.TractorMeta {
	out := make([]domain.TractorMeta, len(tractors))
	for i, t := range tractors {
		out[i] = t.Meta()
	}
	return out
}

func removeAll(hand, cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), hand...)
	for _, c := range cards {
		for i, h := range out {
			if h == c {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}
