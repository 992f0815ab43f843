package kiosk

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CredentialSource mints fresh credentials, typically Client.IssueCredential.
type CredentialSource interface {
	IssueCredential(ctx context.Context) (*CredentialGrant, error)
}

// PassState is a snapshot of the presented credential.
type PassState struct {
	Credential string
	ExpiresAt  time.Time
	Remaining  time.Duration
	// Stale is set when the last refresh attempt failed and the shown
	// credential may already be expired.
	Stale bool
}

// DefaultRefreshThreshold is how close to expiry the presenter refreshes
// proactively.
const DefaultRefreshThreshold = 5 * time.Second

// Pass presents one live check-in credential and keeps it fresh. The
// credential is refreshed proactively shortly before expiry; a failed
// refresh keeps the previous credential on screen and marks it stale
// instead of rendering blank.
type Pass struct {
	source   CredentialSource
	onUpdate func(PassState)

	refreshThreshold time.Duration
	tick             time.Duration

	mu    sync.Mutex
	state PassState
}

// PassOption configures a Pass.
type PassOption func(*Pass)

// WithRefreshThreshold overrides when the proactive refresh fires.
func WithRefreshThreshold(d time.Duration) PassOption {
	return func(p *Pass) {
		p.refreshThreshold = d
	}
}

// WithTick overrides the countdown tick interval.
func WithTick(d time.Duration) PassOption {
	return func(p *Pass) {
		p.tick = d
	}
}

// NewPass creates a credential presenter. onUpdate is called with every
// state change, including each countdown tick; it must not block.
func NewPass(source CredentialSource, onUpdate func(PassState), opts ...PassOption) *Pass {
	p := &Pass{
		source:           source,
		onUpdate:         onUpdate,
		refreshThreshold: DefaultRefreshThreshold,
		tick:             time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches the initial credential and drives the countdown until ctx
// is cancelled. The initial fetch is retried on the tick interval until
// it succeeds.
func (p *Pass) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	if err := p.Refresh(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			state := p.Current()
			if state.Credential == "" || state.Remaining <= p.refreshThreshold {
				if err := p.Refresh(ctx); err != nil && ctx.Err() != nil {
					return ctx.Err()
				}
				continue
			}
			p.publish(state)
		}
	}
}

// Refresh mints a new credential immediately. On failure the previous
// state is kept, marked stale, and a retryable error is returned.
func (p *Pass) Refresh(ctx context.Context) error {
	grant, err := p.source.IssueCredential(ctx)
	if err != nil {
		p.mu.Lock()
		p.state.Stale = true
		state := p.snapshotLocked()
		p.mu.Unlock()
		p.publish(state)
		return fmt.Errorf("refresh credential: %w", err)
	}

	p.mu.Lock()
	p.state = PassState{
		Credential: grant.Credential,
		ExpiresAt:  grant.ExpiresAt,
	}
	state := p.snapshotLocked()
	p.mu.Unlock()
	p.publish(state)
	return nil
}

// Current returns the present credential state.
func (p *Pass) Current() PassState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Pass) snapshotLocked() PassState {
	state := p.state
	if !state.ExpiresAt.IsZero() {
		remaining := time.Until(state.ExpiresAt)
		if remaining < 0 {
			remaining = 0
		}
		state.Remaining = remaining
	}
	return state
}

func (p *Pass) publish(state PassState) {
	if p.onUpdate != nil {
		p.onUpdate(state)
	}
}
