package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"schnapsen/internal/ports"
)

type fakeAccountPort struct {
	updateErr error
	names     []string
	langs     []string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID string, profile ports.Profile) error {
	f.names = append(f.names, profile.DisplayName)
	f.langs = append(f.langs, profile.LangTag)
	return f.updateErr
}

type fakeWelcomeBonusPort struct {
	updateErr error
	updates   []welcomeBonusCall
	granted   bool
}

type welcomeBonusCall struct {
	userID   string
	amount   int64
	metadata map[string]interface{}
}

func (f *fakeWelcomeBonusPort) GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	f.updates = append(f.updates, welcomeBonusCall{
		userID:   userID,
		amount:   amount,
		metadata: metadata,
	})
	if f.updateErr != nil {
		return false, f.updateErr
	}
	return f.granted, nil
}

type fakeStatsPort struct {
	initErr error
	inits   []string
}

func (f *fakeStatsPort) GetStats(ctx context.Context, userID string) (ports.Stats, error) {
	return ports.Stats{}, nil
}

func (f *fakeStatsPort) AddStats(ctx context.Context, userID string, delta ports.Stats) error {
	return nil
}

func (f *fakeStatsPort) InitStats(ctx context.Context, userID string) error {
	f.inits = append(f.inits, userID)
	return f.initErr
}

func TestOnboardNewUser_GrantsWelcomeBonus(t *testing.T) {
	accounts := &fakeAccountPort{}
	bonuses := &fakeWelcomeBonusPort{granted: true}
	stats := &fakeStatsPort{}
	service := NewService(accounts, bonuses, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil || result.StatsErr != nil {
		t.Fatalf("Expected no non-fatal errors, got %+v", result)
	}
	if len(bonuses.updates) != 1 {
		t.Fatalf("Expected 1 welcome bonus call, got %d", len(bonuses.updates))
	}
	if bonuses.updates[0].amount != defaultWelcomeBonusGold {
		t.Fatalf("Expected welcome bonus %d, got %d", defaultWelcomeBonusGold, bonuses.updates[0].amount)
	}
	if !result.WelcomeBonusGranted {
		t.Fatal("Expected welcome bonus to be marked as granted")
	}
	if len(stats.inits) != 1 || stats.inits[0] != "user-1" {
		t.Fatalf("Expected stats record for user-1, got %v", stats.inits)
	}
	if len(accounts.names) != 1 || accounts.names[0] == "" {
		t.Fatalf("Expected a friendly name, got %v", accounts.names)
	}
}

func TestOnboardNewUser_StoresLanguage(t *testing.T) {
	accounts := &fakeAccountPort{}
	bonuses := &fakeWelcomeBonusPort{granted: true}
	service := NewService(accounts, bonuses, nil, rand.New(rand.NewSource(1))).WithLanguage("de")

	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if len(accounts.langs) != 1 || accounts.langs[0] != "de" {
		t.Fatalf("Expected lang tag de, got %v", accounts.langs)
	}
	if bonuses.updates[0].metadata["name"] != accounts.names[0] {
		t.Fatalf("Expected bonus metadata to name %s, got %v", accounts.names[0], bonuses.updates[0].metadata)
	}
}

func TestOnboardNewUser_AccountUpdateFailureStillGrantsBonus(t *testing.T) {
	bonuses := &fakeWelcomeBonusPort{granted: true}
	service := NewService(&fakeAccountPort{updateErr: errors.New("update failed")}, bonuses, nil, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}
	if len(bonuses.updates) != 1 {
		t.Fatalf("Expected 1 welcome bonus call, got %d", len(bonuses.updates))
	}
	if !result.WelcomeBonusGranted {
		t.Fatal("Expected welcome bonus to be marked as granted")
	}
}

func TestOnboardNewUser_StatsFailureIsNonFatal(t *testing.T) {
	stats := &fakeStatsPort{initErr: errors.New("storage down")}
	service := NewService(&fakeAccountPort{}, &fakeWelcomeBonusPort{granted: true}, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.StatsErr == nil {
		t.Fatal("Expected stats error to be captured")
	}
}

func TestOnboardNewUser_WelcomeBonusFailureReturnsError(t *testing.T) {
	service := NewService(&fakeAccountPort{}, &fakeWelcomeBonusPort{updateErr: errors.New("wallet failed")}, nil, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when welcome bonus fails")
	}
}

func TestOnboardNewUser_WelcomeBonusAlreadyGranted(t *testing.T) {
	bonuses := &fakeWelcomeBonusPort{granted: false}
	service := NewService(&fakeAccountPort{}, bonuses, nil, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.WelcomeBonusGranted {
		t.Fatal("Expected welcome bonus to be marked as already granted")
	}
}

func TestOnboardNewUser_NotConfigured(t *testing.T) {
	service := NewService(nil, nil, nil, nil)
	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error for unconfigured service")
	}
}
