package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"schnapsen/internal/ports"
)

const (
	defaultWelcomeBonusGold = 1000
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// StatsErr is set when the statistics record could not be created.
	StatsErr error
	// WelcomeBonusGranted is false when the bonus had been granted before.
	WelcomeBonusGranted bool
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	bonuses  ports.WelcomeBonusPort
	stats    ports.StatsPort
	rng      *rand.Rand
	lang     string
}

// NewService constructs an onboarding service with required ports.
// accounts/bonuses must be non-nil; stats may be nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, bonuses ports.WelcomeBonusPort, stats ports.StatsPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		bonuses:  bonuses,
		stats:    stats,
		rng:      rng,
	}
}

// WithLanguage sets the language tag stored on new profiles.
func (s *Service) WithLanguage(lang string) *Service {
	s.lang = lang
	return s
}

// OnboardNewUser names a newly created account, opens its statistics
// record and grants the welcome bonus once.
// Returns a Result with any non-fatal issues and an error if the welcome bonus cannot be granted.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.bonuses == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	profile := ports.Profile{Username: displayName, DisplayName: displayName, LangTag: s.lang}
	if err := s.accounts.UpdateProfile(ctx, userID, profile); err != nil {
		result.ProfileUpdateErr = err
	}
	if s.stats != nil {
		if err := s.stats.InitStats(ctx, userID); err != nil {
			result.StatsErr = err
		}
	}

	granted, err := s.bonuses.GrantWelcomeBonusOnce(ctx, userID, defaultWelcomeBonusGold, map[string]interface{}{
		"reason": "welcome_bonus",
		"name":   displayName,
	})
	if err != nil {
		return result, fmt.Errorf("failed to grant welcome bonus: %w", err)
	}
	result.WelcomeBonusGranted = granted

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Flinke", "Schlaue", "Stille", "Kecke", "Frohe", "Wilde", "Brave", "Gmiatliche"}
	nouns := []string{"Bube", "Dame", "Koenig", "Sau", "Zehner", "Trumpf", "Stich", "Bummerl"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
