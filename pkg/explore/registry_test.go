package explore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeSource struct {
	mu       sync.Mutex
	payloads map[string][]byte
}

func (f *fakeSource) Fetch(_ context.Context, sessionID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.payloads[sessionID]
	if !ok {
		return nil, fmt.Errorf("no artifact for session %s", sessionID)
	}
	return payload, nil
}

func TestRegistryLoad(t *testing.T) {
	src := &fakeSource{payloads: map[string][]byte{
		"s1": []byte(forecastPayload),
	}}
	r := NewRegistry(src)

	if err := r.Load(context.Background(), "s1"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	st := r.Status("s1")
	if st.State != LoadStateLoaded {
		t.Fatalf("state = %v, want loaded", st.State)
	}
	if st.NodeCount != 2 || st.EdgeCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", st.NodeCount, st.EdgeCount)
	}

	err := r.WithSession("s1", func(s *Session) error {
		if len(s.Frame().Nodes) != 1 {
			t.Errorf("base frame should show the single center")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithSession() error = %v", err)
	}
}

func TestRegistryLoadFailure(t *testing.T) {
	src := &fakeSource{payloads: map[string][]byte{}}
	r := NewRegistry(src)

	if err := r.Load(context.Background(), "missing"); err == nil {
		t.Fatal("Load() expected error")
	}

	st := r.Status("missing")
	if st.State != LoadStateError {
		t.Errorf("state = %v, want error", st.State)
	}
	if st.Error == "" {
		t.Error("error message not retained")
	}

	if err := r.WithSession("missing", func(*Session) error { return nil }); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("WithSession() error = %v, want ErrNotLoaded", err)
	}
}

func TestRegistryReloadReplacesState(t *testing.T) {
	src := &fakeSource{payloads: map[string][]byte{
		"s1": []byte(forecastPayload),
	}}
	r := NewRegistry(src)

	if err := r.Load(context.Background(), "s1"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	_ = r.WithSession("s1", func(s *Session) error {
		s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})
		return nil
	})

	// A reload installs a fresh session: expansion and selection are gone.
	if err := r.Load(context.Background(), "s1"); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	_ = r.WithSession("s1", func(s *Session) error {
		if s.Selection() != nil || len(s.Expanded()) != 0 {
			t.Error("reload kept stale exploration state")
		}
		return nil
	})
}

func TestRegistryFailedReloadKeepsPreviousGraph(t *testing.T) {
	src := &fakeSource{payloads: map[string][]byte{
		"s1": []byte(forecastPayload),
	}}
	r := NewRegistry(src)

	if err := r.Load(context.Background(), "s1"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	delete(src.payloads, "s1")
	if err := r.Load(context.Background(), "s1"); err == nil {
		t.Fatal("reload expected error")
	}

	// The previous graph remains explorable even though the entry reports
	// the failed load.
	if st := r.Status("s1"); st.State != LoadStateError {
		t.Errorf("state = %v, want error", st.State)
	}
	if err := r.WithSession("s1", func(*Session) error { return nil }); err != nil {
		t.Errorf("WithSession() error = %v, previous session should survive", err)
	}
}

func TestRegistryStatusUnknownSession(t *testing.T) {
	r := NewRegistry(&fakeSource{})
	if st := r.Status("nope"); st.State != LoadStateLoading {
		t.Errorf("state = %v, want loading for unknown session", st.State)
	}
}

func TestRegistryPreload(t *testing.T) {
	src := &fakeSource{payloads: map[string][]byte{
		"a": []byte(forecastPayload),
		"b": []byte(`{"nodes":[{"id":"x"}]}`),
	}}
	r := NewRegistry(src)

	if err := r.Preload(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if st := r.Status(id); st.State != LoadStateLoaded {
			t.Errorf("session %s state = %v, want loaded", id, st.State)
		}
	}
}
