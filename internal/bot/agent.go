package bot

import (
	"schnapsen/internal/domain"
)

// Agent represents the autonomous AI seat of a match.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to make its move on the table.
func (a *Agent) Play(t *domain.Table, ui domain.Notifier) (Move, error) {
	if a.Strategy == nil {
		return Move{}, ErrNoStrategy
	}
	return a.Strategy.CalculateMove(t, ui)
}
