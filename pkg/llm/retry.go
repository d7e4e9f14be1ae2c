package llm

import (
	"context"
	"time"
)

// RetryingProvider decorates an LLMProvider with a bounded number of
// attempts. The backend defines no retry policy of its own, so attempts and
// the pause between them are chosen here and surfaced as configuration.
type RetryingProvider struct {
	inner       LLMProvider
	maxAttempts int
	pause       time.Duration
}

var _ LLMProvider = &RetryingProvider{}

func WithRetry(inner LLMProvider, maxAttempts int, pause time.Duration) *RetryingProvider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryingProvider{
		inner:       inner,
		maxAttempts: maxAttempts,
		pause:       pause,
	}
}

func (r *RetryingProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		answer, err := r.inner.Chat(ctx, history, opts...)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.pause):
		}
	}
	return "", lastErr
}

func (r *RetryingProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return r.Chat(ctx, []Message{{Role: "user", Content: prompt}}, opts...)
}
