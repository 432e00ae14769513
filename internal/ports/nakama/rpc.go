package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"schnapsen/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

var errNoUser = runtime.NewError("authenticated user required", 16)

// StatsResponse is returned by the get_stats RPC.
type StatsResponse struct {
	ports.Stats
	Gold int64 `json:"gold"`
}

// rpcGetStats returns the caller's record against the AI and wallet balance.
//
// Payload: unused.
func rpcGetStats(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", errNoUser
	}
	return getStats(ctx, logger, NewNakamaStatsAdapter(nk), NewNakamaEconomyAdapter(nk), userID)
}

func getStats(ctx context.Context, logger runtime.Logger, stats ports.StatsPort, economy ports.EconomyPort, userID string) (string, error) {
	record, err := stats.GetStats(ctx, userID)
	if err != nil {
		logger.Error("GetStats [User:%s]: %v", userID, err)
		return "", err
	}
	gold, err := economy.GetBalance(ctx, userID)
	if err != nil {
		// The record is still useful without the balance.
		logger.Warn("GetStats [User:%s]: Failed to read balance: %v", userID, err)
	}

	b, err := json.Marshal(StatsResponse{Stats: record, Gold: gold})
	if err != nil {
		return "", fmt.Errorf("failed to marshal stats: %w", err)
	}
	return string(b), nil
}
