package domain

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Callers wrap them with fmt.Errorf and
// branch on them with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service failed")
	ErrTimeout         = errors.New("external service timed out")
)

// WrapExternal tags a failure returned by an external capability. callCtx is
// the context the call ran under; when its deadline has passed the failure is
// reported as ErrTimeout, otherwise as ErrExternalService.
func WrapExternal(callCtx context.Context, capability string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", capability, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", capability, ErrExternalService, err)
}
