package ports

import (
	"context"
	"errors"
)

// ErrSignalUnavailable marks a polled signal that could not be read this
// tick (missing permissions, helper binary failing, ...). The monitor
// skips the affected emission and retries on the next tick.
var ErrSignalUnavailable = errors.New("signal unavailable")

// SignalSourcePort samples the three OS signals the state machine runs on.
type SignalSourcePort interface {
	// FrontmostApp returns the name of the focused application.
	FrontmostApp(ctx context.Context) (string, error)

	// FrontmostTabTitle returns the active browser tab as "title | url",
	// or "" when the browser has no usable window.
	FrontmostTabTitle(ctx context.Context) (string, error)

	// IdleSeconds returns the seconds since the last keyboard or mouse input.
	IdleSeconds(ctx context.Context) (float64, error)
}
