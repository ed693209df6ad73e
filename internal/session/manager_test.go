package session

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
}

func TestManagerSessionExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager := NewManager(30*time.Minute, WithClock(clock.Now))

	created := manager.Create("p1")
	if !created.ExpiresAt.Equal(created.UnlockedAt.Add(30 * time.Minute)) {
		t.Fatalf("expected expiry one TTL after unlock, got %v", created.ExpiresAt)
	}
	if !manager.IsValid("p1") {
		t.Fatal("expected fresh session to be valid")
	}

	clock.Advance(30 * time.Minute)
	if !manager.IsValid("p1") {
		t.Fatal("expected session to be valid exactly at expiry")
	}

	clock.Advance(time.Second)
	if manager.IsValid("p1") {
		t.Fatal("expected session to be invalid after expiry")
	}
	if manager.Len() != 0 {
		t.Fatal("expected expired session to be evicted on check")
	}
}

func TestManagerExtendSlidesExpiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager := NewManager(30*time.Minute, WithClock(clock.Now))
	manager.Create("p1")

	clock.Advance(20 * time.Minute)
	if !manager.Extend("p1") {
		t.Fatal("expected live session to extend")
	}

	clock.Advance(20 * time.Minute)
	if !manager.IsValid("p1") {
		t.Fatal("expected extended session to still be valid")
	}

	clock.Advance(11 * time.Minute)
	if manager.Extend("p1") {
		t.Fatal("expected expired session to not extend")
	}
	if manager.IsValid("p1") {
		t.Fatal("expected extend to not revive an expired session")
	}
	if manager.Extend("unknown") {
		t.Fatal("expected unknown session to not extend")
	}
}

func TestManagerClearAndClearAll(t *testing.T) {
	t.Parallel()

	manager := NewManager(time.Minute)
	manager.Create("a")
	manager.Create("b")
	manager.Create("c")

	manager.Clear("a")
	if manager.IsValid("a") {
		t.Fatal("expected cleared session to be invalid")
	}
	if !manager.IsValid("b") {
		t.Fatal("expected other sessions to survive clear")
	}

	manager.ClearAll()
	if manager.Len() != 0 {
		t.Fatalf("expected no sessions after clear all, got %d", manager.Len())
	}
}

func TestManagerSweepRemovesOnlyExpired(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager := NewManager(10*time.Minute, WithClock(clock.Now))
	manager.Create("old")
	clock.Advance(5 * time.Minute)
	manager.Create("new")
	clock.Advance(6 * time.Minute)

	if removed := manager.Sweep(); removed != 1 {
		t.Fatalf("expected 1 expired session removed, got %d", removed)
	}
	if _, ok := manager.Get("new"); !ok {
		t.Fatal("expected live session to remain after sweep")
	}
}

func TestNewManagerDefaultsTTL(t *testing.T) {
	t.Parallel()

	if got := NewManager(0).TTL(); got != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, got)
	}
}

func TestStartSweeperEvictsExpiredSessions(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager := NewManager(time.Minute, WithClock(clock.Now))
	manager.Create("p1")
	clock.Advance(2 * time.Minute)

	scheduler, err := StartSweeper(manager, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("start sweeper: %v", err)
	}
	t.Cleanup(func() { _ = scheduler.Shutdown() })

	deadline := time.Now().Add(2 * time.Second)
	for manager.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected sweeper to evict expired session")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartSweeperDisabledForZeroInterval(t *testing.T) {
	t.Parallel()

	scheduler, err := StartSweeper(NewManager(time.Minute), 0, nil)
	if err != nil {
		t.Fatalf("start sweeper: %v", err)
	}
	if scheduler != nil {
		t.Fatal("expected no scheduler when interval is zero")
	}
}

func TestManagerCreateIssuesFreshID(t *testing.T) {
	t.Parallel()

	manager := NewManager(30*time.Minute, WithClock(newFakeClock().Now))

	first := manager.Create("p1")
	second := manager.Create("p1")
	if first.ID == "" || second.ID == "" {
		t.Fatal("expected sessions to carry an id")
	}
	if first.ID == second.ID {
		t.Fatal("expected each unlock to get its own id at the same instant")
	}

	if !manager.Extend("p1") {
		t.Fatal("expected live session to extend")
	}
	live, ok := manager.Get("p1")
	if !ok || live.ID != second.ID {
		t.Fatalf("expected extend to keep id %q, got %q", second.ID, live.ID)
	}
}
