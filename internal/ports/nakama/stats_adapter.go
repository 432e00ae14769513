package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"schnapsen/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "stats"
	statsKey        = "record"
	statsRetries    = 3
)

var errStatsConflict = errors.New("stats record changed concurrently")

// NakamaStatsAdapter implements ports.StatsPort with Nakama storage.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// read returns the stored record and its version, zero and "" when absent.
func (a *NakamaStatsAdapter) read(ctx context.Context, userID string) (ports.Stats, string, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: statsCollection, Key: statsKey, UserID: userID},
	})
	if err != nil {
		return ports.Stats{}, "", fmt.Errorf("failed to read stats: %w", err)
	}
	if len(objects) == 0 {
		return ports.Stats{}, "", nil
	}

	var stats ports.Stats
	if err := json.Unmarshal([]byte(objects[0].Value), &stats); err != nil {
		return ports.Stats{}, "", fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return stats, objects[0].Version, nil
}

// write stores stats if the record is still at version. "*" requires the
// record to be absent and "" overwrites unconditionally.
func (a *NakamaStatsAdapter) write(ctx context.Context, userID string, stats ports.Stats, version string) error {
	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return errStatsConflict
		}
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

// GetStats returns the user's record.
func (a *NakamaStatsAdapter) GetStats(ctx context.Context, userID string) (ports.Stats, error) {
	if userID == "" {
		return ports.Stats{}, fmt.Errorf("userID is required")
	}
	stats, _, err := a.read(ctx, userID)
	return stats, err
}

// AddStats adds delta with an optimistic read-modify-write.
func (a *NakamaStatsAdapter) AddStats(ctx context.Context, userID string, delta ports.Stats) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}
	for attempt := 0; attempt < statsRetries; attempt++ {
		stats, version, err := a.read(ctx, userID)
		if err != nil {
			return err
		}
		if version == "" {
			version = "*"
		}
		err = a.write(ctx, userID, stats.Add(delta), version)
		if !errors.Is(err, errStatsConflict) {
			return err
		}
	}
	return errStatsConflict
}

// InitStats creates an empty record unless one exists.
func (a *NakamaStatsAdapter) InitStats(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}
	err := a.write(ctx, userID, ports.Stats{}, "*")
	if errors.Is(err, errStatsConflict) {
		return nil
	}
	return err
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
