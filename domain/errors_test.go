package domain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWrapExternal(t *testing.T) {
	cause := errors.New("rpc error: code = Unavailable")

	if got := WrapExternal(context.Background(), "speech", nil); got != nil {
		t.Fatalf("expected nil for nil error, got %v", got)
	}

	err := WrapExternal(context.Background(), "speech", cause)
	if !errors.Is(err, ErrExternalService) {
		t.Errorf("expected ErrExternalService, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("did not expect ErrTimeout, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err = WrapExternal(ctx, "speech", cause)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout once the deadline passed, got %v", err)
	}

	err = WrapExternal(context.Background(), "speech", context.DeadlineExceeded)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout for DeadlineExceeded cause, got %v", err)
	}
}
