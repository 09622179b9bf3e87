package bot

import (
	"fmt"
	"math/rand"
)

// NewBrain builds a strategy for the given difficulty. Easy bots never
// contest a trick the other side is winning.
func NewBrain(difficulty string, rng *rand.Rand) (Brain, error) {
	switch difficulty {
	case "easy":
		return NewPickerBot(rng, true), nil
	case "", "medium", "hard":
		return NewPickerBot(rng, false), nil
	default:
		return nil, fmt.Errorf("unknown bot difficulty %q", difficulty)
	}
}
