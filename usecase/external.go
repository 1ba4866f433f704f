package usecase

import (
	"context"
	"time"

	"github.com/satriahrh/sentivox/domain"
)

// DefaultCallTimeout bounds external calls when a service is built without one
const DefaultCallTimeout = 30 * time.Second

// callExternal runs fn under its own deadline and tags any failure with the
// capability name and the matching domain error kind.
func callExternal[T any](ctx context.Context, timeout time.Duration, capability string, fn func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := fn(callCtx)
	if err != nil {
		var zero T
		return zero, domain.WrapExternal(callCtx, capability, err)
	}
	return result, nil
}
