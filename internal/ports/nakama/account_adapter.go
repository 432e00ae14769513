package nakama

import (
	"context"

	"schnapsen/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(nk runtime.NakamaModule) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{nk: nk}
}

// UpdateProfile sets the generated player name and table language.
// Metadata is left untouched so bot accounts keep their is_bot tag.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID string, profile ports.Profile) error {
	return a.nk.AccountUpdateId(ctx, userID, profile.Username, nil, profile.DisplayName, "", "", profile.LangTag, "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
