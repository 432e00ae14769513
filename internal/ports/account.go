package ports

import "context"

// Profile is the public face of a player account.
type Profile struct {
	Username    string
	DisplayName string
	// LangTag is the language the table talks in ("en" or "de").
	LangTag string
}

// AccountPort updates player accounts.
type AccountPort interface {
	// UpdateProfile replaces the profile fields of userID. Empty fields are
	// left unchanged by the store.
	UpdateProfile(ctx context.Context, userID string, profile Profile) error
}
