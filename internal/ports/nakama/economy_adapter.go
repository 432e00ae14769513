package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"schnapsen/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const walletCurrency = "gold"

// NakamaEconomyAdapter implements ports.EconomyPort using Nakama's wallet system.
type NakamaEconomyAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaEconomyAdapter creates a new economy adapter.
func NewNakamaEconomyAdapter(nk runtime.NakamaModule) *NakamaEconomyAdapter {
	return &NakamaEconomyAdapter{nk: nk}
}

// GetBalance retrieves the current gold balance for a user.
func (a *NakamaEconomyAdapter) GetBalance(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if account.Wallet == "" {
		return 0, nil
	}

	var wallet map[string]int64
	if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
		return 0, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return wallet[walletCurrency], nil
}

// UpdateBalances applies the settlements of a deal in one ledgered update.
// A loss never takes more gold than the user holds.
func (a *NakamaEconomyAdapter) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	walletUpdates := make([]*runtime.WalletUpdate, 0, len(updates))
	for _, update := range updates {
		amount := update.Amount
		if amount < 0 {
			balance, err := a.GetBalance(ctx, update.UserID)
			if err != nil {
				return err
			}
			if -amount > balance {
				amount = -balance
			}
		}
		if amount == 0 {
			continue
		}
		walletUpdates = append(walletUpdates, &runtime.WalletUpdate{
			UserID:    update.UserID,
			Changeset: map[string]int64{walletCurrency: amount},
			Metadata:  update.Metadata,
		})
	}
	if len(walletUpdates) == 0 {
		return nil
	}

	if _, _, err := a.nk.MultiUpdate(ctx, nil, nil, nil, walletUpdates, true); err != nil {
		return fmt.Errorf("failed to update wallets: %w", err)
	}
	return nil
}

var _ ports.EconomyPort = (*NakamaEconomyAdapter)(nil)
