package usecase

import (
	"context"
	"fmt"

	"activity-tracker/internal/metrics/core/domain"
	"activity-tracker/internal/metrics/core/ports"
)

type CurrentActivityOutput struct {
	// Active is false when the log is empty, the user is idle, or the
	// monitor has not re-observed an app since waking up.
	Active bool
	Key    string
	Tab    string // open tab key, if the current app session has one
}

// GetCurrentActivityUseCase reports the activity the final open session
// points at, or none.
type GetCurrentActivityUseCase struct {
	events ports.EventSourcePort
}

func NewGetCurrentActivityUseCase(events ports.EventSourcePort) *GetCurrentActivityUseCase {
	return &GetCurrentActivityUseCase{events: events}
}

func (uc *GetCurrentActivityUseCase) Execute(ctx context.Context) (*CurrentActivityOutput, error) {
	events, _, err := uc.events.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}

	rec := domain.Reconstruct(events)

	out := &CurrentActivityOutput{}
	if s, ok := lastOpen(rec.App); ok {
		out.Active = true
		out.Key = s.Key
	}
	if s, ok := lastOpen(rec.Tab); ok {
		out.Tab = s.Key
	}
	return out, nil
}

func lastOpen(sessions []domain.Session) (domain.Session, bool) {
	if n := len(sessions); n > 0 && sessions[n-1].Open {
		return sessions[n-1], true
	}
	return domain.Session{}, false
}
