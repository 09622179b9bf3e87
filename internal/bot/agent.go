package bot

import (
	"tractor/internal/domain"
)

// Agent is an autonomous player occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// PlayAtSeat asks the agent's strategy for the cards to play from the seat.
func (a *Agent) PlayAtSeat(r *domain.Round, seat int) ([]domain.Card, error) {
	return a.Strategy.PickPlay(r, seat)
}

// BottomAtSeat asks the agent's strategy which cards to bury from the seat.
func (a *Agent) BottomAtSeat(r *domain.Round, seat int) ([]domain.Card, error) {
	return a.Strategy.PickBottom(r, seat)
}
