package bot

import (
	"tractor/internal/domain"
)

// Brain is the interface every bot strategy implements. Both methods compute
// an action for the seat; they never mutate the round.
type Brain interface {
	PickPlay(r *domain.Round, seat int) ([]domain.Card, error)
	PickBottom(r *domain.Round, seat int) ([]domain.Card, error)
}
