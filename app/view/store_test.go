package view

import (
	"errors"
	"testing"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

func newTestStore(source Source, clock *time.Time) *Store {
	store := NewStore(source, market.NewFilterer(), User{Name: "Alex Johnson"}, 0)
	store.now = func() time.Time { return *clock }
	return store
}

func TestStore_CreateGetDelete(t *testing.T) {
	clock := time.Date(2025, 5, 14, 12, 0, 0, 0, time.UTC)
	store := newTestStore(newFakeSource(), &clock)

	first := store.Create()
	second := store.Create()

	if first.ID == second.ID {
		t.Errorf("Expected unique session ids, got %s twice", first.ID)
	}
	if store.Count() != 2 {
		t.Errorf("Expected 2 sessions, got %d", store.Count())
	}

	got, err := store.Get(first.ID)
	if err != nil || got != first {
		t.Errorf("Expected to get the first session, got %v, %v", got, err)
	}

	if !store.Delete(first.ID) {
		t.Error("Expected delete to report an existing session")
	}
	if store.Delete(first.ID) {
		t.Error("Expected second delete to report a missing session")
	}
	if _, err := store.Get(first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	clock := time.Now()
	store := newTestStore(newFakeSource(), &clock)

	first := store.Create()
	second := store.Create()

	first.SelectTab(TabTrends)
	first.ToggleFilter(AxisImpact, "high")

	if second.Snapshot(ThemeLight, clock).ActiveTab != TabSearch {
		t.Error("Expected second session to keep its own active tab")
	}
	second.SelectTab(TabTrends)
	if !second.Snapshot(ThemeLight, clock).Trends.Criteria.MatchesAll() {
		t.Error("Expected second session to have its own trend filters")
	}
}

func TestStore_ExpireIdle(t *testing.T) {
	clock := time.Date(2025, 5, 14, 12, 0, 0, 0, time.UTC)
	store := newTestStore(newFakeSource(), &clock)

	idle := store.Create()
	active := store.Create()

	clock = clock.Add(20 * time.Minute)
	if _, err := store.Get(active.ID); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(15 * time.Minute)
	if expired := store.ExpireIdle(30 * time.Minute); expired != 1 {
		t.Errorf("Expected 1 expired session, got %d", expired)
	}

	if _, err := store.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected idle session to be gone, got %v", err)
	}
	if _, err := store.Get(active.ID); err != nil {
		t.Errorf("Expected active session to survive, got %v", err)
	}
}
