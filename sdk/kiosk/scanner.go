package kiosk

import (
	"context"
	"time"
)

// Source produces decoded credential strings from a camera or scanner
// device. Open may fail transiently (camera busy, device detached); the
// scanner retries it. The returned channel is closed when the source
// stops producing.
type Source interface {
	Open(ctx context.Context) (<-chan string, error)
	Close() error
}

// Validator performs one admission validation call.
type Validator interface {
	Validate(ctx context.Context, credential string) (*ValidationResult, error)
}

// Display renders the scan loop state on the kiosk screen.
type Display interface {
	Scanning()
	Processing()
	Result(res *ValidationResult)
}

const (
	// DefaultDwell is how long an admission outcome stays on screen
	// before the loop resumes scanning.
	DefaultDwell = 4 * time.Second

	// DefaultOpenRetryWait is the pause between camera open attempts.
	DefaultOpenRetryWait = 2 * time.Second
)

// Scanner drives the kiosk scan loop: decode values arrive on a channel,
// each distinct value triggers exactly one validation call, and the
// outcome dwells on screen before scanning resumes. Identical consecutive
// decodes within one dwell cycle are dropped so a badge held up to the
// camera does not fire repeated validations.
type Scanner struct {
	source    Source
	validator Validator
	display   Display

	dwell         time.Duration
	openRetryWait time.Duration
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithDwell overrides the outcome dwell duration.
func WithDwell(d time.Duration) ScannerOption {
	return func(s *Scanner) {
		s.dwell = d
	}
}

// WithOpenRetryWait overrides the pause between camera open attempts.
func WithOpenRetryWait(d time.Duration) ScannerOption {
	return func(s *Scanner) {
		s.openRetryWait = d
	}
}

// NewScanner creates a scan loop over the given source, validator and
// display.
func NewScanner(source Source, validator Validator, display Display, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		source:        source,
		validator:     validator,
		display:       display,
		dwell:         DefaultDwell,
		openRetryWait: DefaultOpenRetryWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the scan loop until ctx is cancelled or the source channel
// closes. Cancellation tears down the source, the dwell timer and any
// in-flight validation before returning; no display callback fires after
// Run returns.
func (s *Scanner) Run(ctx context.Context) error {
	decodes, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer s.source.Close()

	s.display.Scanning()

	var lastValue string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case value, ok := <-decodes:
			if !ok {
				return nil
			}
			if value == "" || value == lastValue {
				continue
			}
			lastValue = value

			s.display.Processing()
			res, err := s.validator.Validate(ctx, value)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Offline kiosks deny rather than queue. No retry.
				res = &ValidationResult{
					Status: StatusDeniedNoAccess,
					Reason: "network error",
				}
			}
			s.display.Result(res)

			if err := s.dwellAndReset(ctx, decodes, &lastValue); err != nil {
				return err
			}
			s.display.Scanning()
		}
	}
}

// open acquires the decode channel, retrying transient camera failures.
func (s *Scanner) open(ctx context.Context) (<-chan string, error) {
	for {
		decodes, err := s.source.Open(ctx)
		if err == nil {
			return decodes, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.openRetryWait):
		}
	}
}

// dwellAndReset keeps the outcome on screen for the dwell duration while
// discarding any scans that arrive, then clears the duplicate filter so
// the same credential can be presented again.
func (s *Scanner) dwellAndReset(ctx context.Context, decodes <-chan string, lastValue *string) error {
	timer := time.NewTimer(s.dwell)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-decodes:
			if !ok {
				return nil
			}
		case <-timer.C:
			*lastValue = ""
			return nil
		}
	}
}
