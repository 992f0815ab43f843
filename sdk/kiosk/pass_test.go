package kiosk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeCredentialSource struct {
	mu     sync.Mutex
	calls  int
	issue  func(call int) (*CredentialGrant, error)
	grants []*CredentialGrant
}

func (f *fakeCredentialSource) IssueCredential(ctx context.Context) (*CredentialGrant, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	if f.issue != nil {
		return f.issue(call)
	}
	grant := &CredentialGrant{
		Credential:       "token",
		ExpiresAt:        time.Now().Add(time.Minute),
		ExpiresInSeconds: 60,
	}
	f.mu.Lock()
	f.grants = append(f.grants, grant)
	f.mu.Unlock()
	return grant, nil
}

func (f *fakeCredentialSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPass_RefreshReplacesState(t *testing.T) {
	source := &fakeCredentialSource{}
	var mu sync.Mutex
	var updates []PassState
	p := NewPass(source, func(s PassState) {
		mu.Lock()
		updates = append(updates, s)
		mu.Unlock()
	})

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := p.Current()
	if state.Credential != "token" || state.Stale {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Remaining <= 0 {
		t.Fatalf("expected positive countdown, got %v", state.Remaining)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
}

func TestPass_FailedRefreshKeepsOldCredential(t *testing.T) {
	source := &fakeCredentialSource{
		issue: func(call int) (*CredentialGrant, error) {
			if call == 1 {
				return &CredentialGrant{
					Credential: "first",
					ExpiresAt:  time.Now().Add(time.Minute),
				}, nil
			}
			return nil, errors.New("connection refused")
		},
	}
	p := NewPass(source, nil)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := p.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected refresh error")
	}

	state := p.Current()
	if state.Credential != "first" {
		t.Fatalf("previous credential lost: %+v", state)
	}
	if !state.Stale {
		t.Fatal("state not marked stale after failed refresh")
	}
}

func TestPass_RunRefreshesNearExpiry(t *testing.T) {
	source := &fakeCredentialSource{
		issue: func(call int) (*CredentialGrant, error) {
			return &CredentialGrant{
				Credential: "token",
				ExpiresAt:  time.Now().Add(30 * time.Millisecond),
			}, nil
		},
	}
	p := NewPass(source, nil,
		WithTick(5*time.Millisecond),
		WithRefreshThreshold(10*time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = p.Run(ctx)

	if got := source.callCount(); got < 2 {
		t.Fatalf("expected proactive refreshes, got %d calls", got)
	}
}

func TestPass_RunRetriesInitialFetch(t *testing.T) {
	source := &fakeCredentialSource{
		issue: func(call int) (*CredentialGrant, error) {
			if call < 3 {
				return nil, errors.New("connection refused")
			}
			return &CredentialGrant{
				Credential: "token",
				ExpiresAt:  time.Now().Add(time.Minute),
			}, nil
		},
	}
	p := NewPass(source, nil, WithTick(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = p.Run(ctx)
		close(done)
	}()

	deadline := time.After(400 * time.Millisecond)
	for p.Current().Credential == "" {
		select {
		case <-deadline:
			t.Fatal("initial fetch never succeeded")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
