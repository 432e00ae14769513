package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

type bonusModule struct {
	runtime.NakamaModule
	writes  []*runtime.StorageWrite
	wallets []*runtime.WalletUpdate
	err     error
}

func (m *bonusModule) MultiUpdate(ctx context.Context, accountUpdates []*runtime.AccountUpdate, storageWrites []*runtime.StorageWrite, storageDeletes []*runtime.StorageDelete, walletUpdates []*runtime.WalletUpdate, updateLedger bool) ([]*api.StorageObjectAck, []*runtime.WalletUpdateResult, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	m.writes = append(m.writes, storageWrites...)
	m.wallets = append(m.wallets, walletUpdates...)
	return nil, nil, nil
}

func TestGrantWelcomeBonusOnce(t *testing.T) {
	nk := &bonusModule{}
	adapter := NewNakamaWelcomeBonusAdapter(nk)

	granted, err := adapter.GrantWelcomeBonusOnce(context.Background(), "user-1", 1000, map[string]interface{}{"name": "FlinkeBube1234"})
	if err != nil || !granted {
		t.Fatalf("GrantWelcomeBonusOnce() = %v, %v, want true, nil", granted, err)
	}
	if len(nk.writes) != 1 || nk.writes[0].Version != "*" || nk.writes[0].Key != welcomeBonusKey {
		t.Fatalf("storage writes = %+v", nk.writes)
	}
	var marker map[string]interface{}
	if err := json.Unmarshal([]byte(nk.writes[0].Value), &marker); err != nil {
		t.Fatalf("marker is not JSON: %v", err)
	}
	if marker["currency"] != walletCurrency {
		t.Fatalf("marker currency = %v, want %s", marker["currency"], walletCurrency)
	}
	if len(nk.wallets) != 1 || nk.wallets[0].Changeset[walletCurrency] != 1000 {
		t.Fatalf("wallet updates = %+v", nk.wallets)
	}
	meta := nk.wallets[0].Metadata
	if meta["game"] != "schnapsen" || meta["reason"] != welcomeBonusKey || meta["name"] != "FlinkeBube1234" {
		t.Fatalf("wallet metadata = %v", meta)
	}
}

func TestGrantWelcomeBonusOnceAlreadyGranted(t *testing.T) {
	adapter := NewNakamaWelcomeBonusAdapter(&bonusModule{err: runtime.ErrStorageRejectedVersion})
	granted, err := adapter.GrantWelcomeBonusOnce(context.Background(), "user-1", 1000, nil)
	if err != nil || granted {
		t.Fatalf("GrantWelcomeBonusOnce() = %v, %v, want false, nil", granted, err)
	}
}

func TestGrantWelcomeBonusOnceRejectsBadInput(t *testing.T) {
	adapter := NewNakamaWelcomeBonusAdapter(&bonusModule{})
	if _, err := adapter.GrantWelcomeBonusOnce(context.Background(), "", 1000, nil); err == nil {
		t.Fatal("expected error for empty user id")
	}
	if _, err := adapter.GrantWelcomeBonusOnce(context.Background(), "user-1", 0, nil); err == nil {
		t.Fatal("expected error for zero amount")
	}
}
