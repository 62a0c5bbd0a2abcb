// Package retry provides exponential backoff with jitter for transient
// Google Docs API failures, used by the verify package's real-API
// transport (spec.md §6 "Real API calls must be retried on transient
// failure").
package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gapi "google.golang.org/api/googleapi"
)

// Policy configures a backoff loop. The zero value has no retryable codes
// and MaxAttempts 0, so it never retries anything; use Default or New for a
// policy that actually backs off.
type Policy struct {
	MaxAttempts    int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RetryableCodes map[int]bool

	// Log, if set, receives one line per retried attempt before the wait
	// begins — callers wire their own CLI output stream here (same
	// convention internal/verify.Composite uses for its mismatch log).
	Log io.Writer
}

// Default is the policy internal/verify's RealTransport runs real Docs API
// calls under: 5 retries, 1s base backoff doubling up to 30s, retrying
// 429 (rate limit) and 500/502/503 (transient server errors).
var Default = New(5, 1*time.Second, 30*time.Second, 429, 500, 502, 503)

// New builds a Policy from its numeric parameters, turning the variadic
// code list into the RetryableCodes lookup Do checks on each failure.
func New(maxAttempts int, baseDelay, maxDelay time.Duration, retryableCodes ...int) Policy {
	codes := make(map[int]bool, len(retryableCodes))
	for _, c := range retryableCodes {
		codes[c] = true
	}
	return Policy{MaxAttempts: maxAttempts, BaseDelay: baseDelay, MaxDelay: maxDelay, RetryableCodes: codes}
}

// Do runs fn under Default.
func Do(ctx context.Context, fn func() error) error {
	return Default.Do(ctx, fn)
}

// Do calls fn, retrying with exponential backoff plus jitter while the
// error is one p.RetryableCodes marks transient, up to p.MaxAttempts
// additional tries. A non-retryable error, or the final failed attempt, is
// returned to the caller; ctx cancellation during a wait short-circuits
// immediately.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !p.retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts {
			return fmt.Errorf("after %d retries: %w", p.MaxAttempts, lastErr)
		}

		wait := p.backoff(attempt)
		p.logAttempt(attempt, lastErr, wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}

// backoff computes attempt's wait: BaseDelay doubled per attempt, capped at
// MaxDelay, then collapsed to 50-100% of that cap by adding a random
// jitter — so many callers hitting the same quota limit at once don't all
// retry on the same tick.
func (p Policy) backoff(attempt int) time.Duration {
	delay := p.BaseDelay * time.Duration(1<<uint(attempt))
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	half := delay / 2
	return half + jitter(half)
}

// jitter returns a uniform random duration in [0, max). crypto/rand, not
// math/rand, so the wait can't be predicted from a seeded PRNG by whatever
// is rate-limiting the other end.
func jitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return time.Duration(binary.LittleEndian.Uint64(buf[:]) % uint64(max)) //nolint:gosec // bounded by max, not used for anything cryptographic
}

func (p Policy) logAttempt(attempt int, err error, wait time.Duration) {
	if p.Log == nil {
		return
	}
	fmt.Fprintf(p.Log, "retry: attempt %d of %d failed (%v); waiting %s\n", attempt+1, p.MaxAttempts, err, wait)
}

// retryable reports whether err is transient under p's RetryableCodes: a
// *googleapi.Error whose Code is in the set, or — since the Docs API
// sometimes reports quota rejections as a plain error without that
// wrapper — a message containing the rate-limit reason string.
func (p Policy) retryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *gapi.Error
	if errors.As(err, &apiErr) {
		return p.RetryableCodes[apiErr.Code]
	}
	msg := err.Error()
	return strings.Contains(msg, "rateLimitExceeded") || strings.Contains(msg, "429")
}
