package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is the account an AI seat plays under.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

var (
	identities    []BotIdentity
	identityByID  = map[string]BotIdentity{}
	identityMu    sync.RWMutex
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path once.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		var loaded []BotIdentity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		identityMu.Lock()
		defer identityMu.Unlock()
		identities = loaded
		for _, identity := range identities {
			if identity.UserID != "" {
				identityByID[identity.UserID] = identity
			}
		}
	})
	return loadErr
}

// ProvisionBots creates the bot accounts through device authentication and
// tags them with is_bot metadata so clients can render them as AI. level is
// the strategy every AI seat plays at.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger, level BotLevel) {
	provisionOnce.Do(func() {
		identityMu.Lock()
		defer identityMu.Unlock()
		for i := range identities {
			identity := &identities[i]
			if identity.DeviceID == "" {
				continue
			}
			if err := provisionBot(ctx, nk, logger, identity, level); err != nil {
				logger.Error("ProvisionBots: Failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identityByID[identity.UserID] = *identity
			logger.Info("ProvisionBots: Bot %s (%s) is ready. Level: %s", identity.DisplayName, identity.UserID, level)
		}
	})
}

// provisionBot authenticates one identity and stores its account metadata.
// A failed metadata update is only logged.
func provisionBot(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger, identity *BotIdentity, level BotLevel) error {
	userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
	if err != nil {
		return err
	}
	identity.UserID = userID
	identity.Username = username

	metadata := map[string]interface{}{
		"is_bot":       true,
		"difficulty":   level.String(),
		"avatar_index": identity.AvatarIndex,
	}
	if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
		logger.Warn("ProvisionBots: Failed to update bot account %s: %v", userID, err)
	}
	return nil
}

// GetBotIdentity returns the identity for the AI seat of the index-th match
// (mod pool size). Without a pool a stable synthetic identity is derived.
func GetBotIdentity(index int) BotIdentity {
	identityMu.RLock()
	defer identityMu.RUnlock()
	if len(identities) == 0 {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("schnapsen-bot-%d", index)))
		return BotIdentity{
			UserID:      id.String(),
			Username:    fmt.Sprintf("ai-%d", index),
			DisplayName: "AI",
		}
	}
	if index < 0 {
		index = -index
	}
	return identities[index%len(identities)]
}

// IsBot reports whether the given user ID belongs to the bot pool.
func IsBot(userID string) bool {
	identityMu.RLock()
	defer identityMu.RUnlock()
	_, ok := identityByID[userID]
	return ok
}
