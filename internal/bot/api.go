package bot

import (
	"errors"
	"fmt"
	"strings"

	"schnapsen/internal/domain"
)

var (
	ErrEmptyHand  = errors.New("ai hand is empty")
	ErrNoStrategy = errors.New("agent has no strategy")
)

// Move represents the decision made by the AI. The card has already been
// committed to the table when it is returned.
type Move struct {
	Card     domain.Card
	Marriage domain.Marriage
	Closed   bool // the AI closed the stock before leading
	Changed  bool // the AI exchanged the trump jack before leading
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(t *domain.Table, ui domain.Notifier) (Move, error)
}

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelEasy BotLevel = iota
	BotLevelStandard
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelEasy:
		return "easy"
	case BotLevelStandard:
		return "standard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseBotLevel maps a configured difficulty name to a level.
func ParseBotLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return BotLevelEasy, nil
	case "", "standard":
		return BotLevelStandard, nil
	default:
		return BotLevelStandard, fmt.Errorf("unknown bot level: %q", s)
	}
}
