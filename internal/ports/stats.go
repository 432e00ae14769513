package ports

import "context"

// Stats is a player's record against the AI.
type Stats struct {
	GamesWon    int `json:"games_won"`
	GamesLost   int `json:"games_lost"`
	MatchesWon  int `json:"matches_won"`
	MatchesLost int `json:"matches_lost"`
}

// Add returns the sum of s and delta.
func (s Stats) Add(delta Stats) Stats {
	return Stats{
		GamesWon:    s.GamesWon + delta.GamesWon,
		GamesLost:   s.GamesLost + delta.GamesLost,
		MatchesWon:  s.MatchesWon + delta.MatchesWon,
		MatchesLost: s.MatchesLost + delta.MatchesLost,
	}
}

// StatsPort persists per-user statistics.
type StatsPort interface {
	// GetStats returns the user's record, zero when none exists.
	GetStats(ctx context.Context, userID string) (Stats, error)

	// AddStats adds delta to the user's record.
	AddStats(ctx context.Context, userID string, delta Stats) error

	// InitStats creates an empty record unless one already exists.
	InitStats(ctx context.Context, userID string) error
}
