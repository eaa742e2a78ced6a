package track

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/moqt-go/moqt"
)

// budgetOf returns an accessor suitable for NewManager backed by an
// atomic, letting tests raise the budget without a session.
func budgetOf(initial uint64) (func() uint64, func(uint64)) {
	var v atomic.Uint64
	v.Store(initial)
	return v.Load, v.Store
}

func TestDuplicateAliasIsError(t *testing.T) {
	t.Parallel()
	get, _ := budgetOf(0)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)
	m.AddTrack("video")
	if err := m.SetTrackAlias("video", 1); err != nil {
		t.Fatal(err)
	}
	err := m.SetTrackAlias("video", 1)
	var dup *DuplicateTrackAliasError
	if err == nil {
		t.Fatal("expected duplicate alias error")
	}
	if !asDuplicateAlias(err, &dup) || dup.Alias != 1 {
		t.Fatalf("got %v, want DuplicateTrackAliasError{Alias: 1}", err)
	}
}

func TestResolveReturnsName(t *testing.T) {
	t.Parallel()
	get, _ := budgetOf(0)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)
	m.AddTrack("audio")
	if err := m.SetTrackAlias("audio", 2); err != nil {
		t.Fatal(err)
	}
	name, ok := m.ResolveAlias(2)
	if !ok || name != "audio" {
		t.Fatalf("ResolveAlias(2) = (%q, %v), want (audio, true)", name, ok)
	}
}

func TestNewRequestIDRespectsBudget(t *testing.T) {
	t.Parallel()
	get, _ := budgetOf(2)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)
	if _, err := m.NewRequestID(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewRequestID(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewRequestID(); err == nil {
		t.Fatal("expected TooManyRequestsError once counter reaches budget")
	}
}

func TestNewRequestIDTracksRisingBudget(t *testing.T) {
	t.Parallel()
	get, set := budgetOf(1)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)
	if _, err := m.NewRequestID(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewRequestID(); err == nil {
		t.Fatal("expected budget exhaustion before raising it")
	}
	set(2)
	if _, err := m.NewRequestID(); err != nil {
		t.Fatalf("expected allocation to succeed after budget increase: %v", err)
	}
}

func TestHandleSubscribeOKUnknownRequestID(t *testing.T) {
	t.Parallel()
	get, _ := budgetOf(0)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)
	err := m.HandleSubscribeOK(moqt.SubscribeOK{RequestID: 99, TrackAlias: 1})
	if err == nil {
		t.Fatal("expected protocol violation for unknown request id")
	}
}

func TestSubscribeTrackEmitsSubscribe(t *testing.T) {
	t.Parallel()
	ctrl := make(chan moqt.ControlMessage, 1)
	get, _ := budgetOf(10)
	m := NewManager(ctrl, get)

	reqID, stream, err := m.SubscribeTrack(context.Background(), "video")
	if err != nil {
		t.Fatal(err)
	}
	if stream == nil {
		t.Fatal("expected non-nil stream")
	}

	msg := <-ctrl
	sub, ok := msg.(moqt.Subscribe)
	if !ok || sub.RequestID != reqID || sub.TrackName != "video" {
		t.Fatalf("got %+v, want Subscribe{RequestID: %d, TrackName: video}", msg, reqID)
	}

	if err := m.HandleSubscribeOK(moqt.SubscribeOK{RequestID: reqID, TrackAlias: 7}); err != nil {
		t.Fatal(err)
	}
	name, ok := m.ResolveAlias(7)
	if !ok || name != "video" {
		t.Fatalf("ResolveAlias(7) = (%q, %v), want (video, true)", name, ok)
	}
}

// TestNewRequestIDConcurrent races N goroutines against a small budget and
// checks that exactly budget allocations succeed — the compound
// check-then-increment must be atomic with respect to concurrent callers.
func TestNewRequestIDConcurrent(t *testing.T) {
	t.Parallel()
	const budget = 50
	const callers = 200

	get, _ := budgetOf(budget)
	m := NewManager(make(chan moqt.ControlMessage, 1), get)

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[uint64]int)
	successes := 0

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			id, err := m.NewRequestID()
			if err != nil {
				return
			}
			mu.Lock()
			seen[id]++
			successes++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if successes != budget {
		t.Fatalf("got %d successful allocations, want %d", successes, budget)
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("request id %d allocated %d times, want exactly once", id, count)
		}
	}
}

func asDuplicateAlias(err error, target **DuplicateTrackAliasError) bool {
	if d, ok := err.(*DuplicateTrackAliasError); ok {
		*target = d
		return true
	}
	return false
}
