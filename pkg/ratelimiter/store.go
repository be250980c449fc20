package ratelimiter

import (
	"context"
	"time"
)

// Store holds bucket state per key.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it.
	// A negative remainder means the request is denied and nothing was taken.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}
