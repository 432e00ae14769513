package ports

import "context"

// WelcomeBonusPort funds a new player's first stakes against the AI.
type WelcomeBonusPort interface {
	// GrantWelcomeBonusOnce credits amount gold unless the account was
	// credited before, in which case granted is false.
	GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (granted bool, err error)
}
