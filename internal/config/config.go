package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"tractor/internal/domain"
)

type GameConfig struct {
	// Players is the default table size for quick matches.
	Players int `json:"players"`
	// DealIntervalTicks is the number of match ticks between dealt cards.
	DealIntervalTicks int `json:"deal_interval_ticks"`
	// DeclareWindowTicks is how long the declaration stays open once dealing
	// finishes. Every new declaration reopens the full window.
	DeclareWindowTicks int `json:"declare_window_ticks"`
	// BotPlayDelayTicks configures how many ticks a bot waits before playing.
	BotPlayDelayTicks int `json:"bot_play_delay_ticks"`
	// BotAutoFillDelayTicks configures how long to wait before filling open
	// seats with bots.
	BotAutoFillDelayTicks int `json:"bot_auto_fill_delay_ticks"`
	// FixtureDeck names an entry in FixtureDecks to replace shuffling. Meant
	// for local runs and tests.
	FixtureDeck string `json:"fixture_deck"`
	// FixtureDecks maps deck names to cards written in deal order.
	FixtureDecks map[string]string `json:"fixture_decks"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// Players returns the configured table size, or the fallback when no config
// is loaded or the configured size is unsupported.
func Players(fallback int) int {
	if cfg == nil || cfg.Players == 0 {
		return fallback
	}
	if _, ok := domain.BottomSizeForPlayers(cfg.Players); !ok {
		return fallback
	}
	return cfg.Players
}

// DealInterval returns the configured deal pacing in ticks, at least 1.
func DealInterval() int {
	if cfg == nil || cfg.DealIntervalTicks < 1 {
		return 1
	}
	return cfg.DealIntervalTicks
}

// DeclareWindow returns the declaration window in ticks, at least 1.
func DeclareWindow() int {
	if cfg == nil || cfg.DeclareWindowTicks < 1 {
		return 1
	}
	return cfg.DeclareWindowTicks
}

// BotPlayDelay returns how many ticks bots wait before acting.
func BotPlayDelay() int {
	if cfg == nil || cfg.BotPlayDelayTicks < 0 {
		return 0
	}
	return cfg.BotPlayDelayTicks
}

// BotAutoFillDelay returns how many ticks to wait before bots take open
// seats.
func BotAutoFillDelay() int {
	if cfg == nil || cfg.BotAutoFillDelayTicks < 0 {
		return 0
	}
	return cfg.BotAutoFillDelayTicks
}

// LoadFixtureDeck parses the configured fixture deck, if any. The cards are
// listed in deal order.
func LoadFixtureDeck() ([]domain.Card, error) {
	if cfg == nil || cfg.FixtureDeck == "" {
		return nil, nil
	}
	raw, ok := cfg.FixtureDecks[cfg.FixtureDeck]
	if !ok {
		return nil, fmt.Errorf("fixture deck %q is not defined", cfg.FixtureDeck)
	}
	cards, err := domain.ParseCards(raw)
	if err != nil {
		return nil, fmt.Errorf("fixture deck %q: %w", cfg.FixtureDeck, err)
	}
	return cards, nil
}
