// file: internals/llm/retry.go
package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider decorator: timeout per panggilan + maksimal satu retry
// untuk kegagalan transien (rate limit / provider down). Invalid response
// tidak di-retry: konten jelek dari model jarang membaik di percobaan
// kedua dengan prompt yang sama persis.
type RetryProvider struct {
	inner   Provider
	timeout time.Duration
	wait    time.Duration
}

// WithRetry bungkus Provider dengan timeout + single retry.
func WithRetry(p Provider, timeout, wait time.Duration) Provider {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if wait <= 0 {
		wait = 2 * time.Second
	}
	return &RetryProvider{inner: p, timeout: timeout, wait: wait}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.inner.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	if !isTransient(err) {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(r.wait):
	}

	return r.inner.Generate(ctx, req)
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}
	return false
}
