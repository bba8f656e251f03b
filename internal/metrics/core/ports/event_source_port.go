package ports

import (
	"context"

	eventsdomain "activity-tracker/internal/events/core/domain"
)

// EventSourcePort is the read side of the event log. Every query takes a
// fresh full read; sessions are never cached across queries.
type EventSourcePort interface {
	// ReadAll returns the ordered event sequence plus the number of
	// unparseable records that were skipped.
	ReadAll(ctx context.Context) (events []eventsdomain.Event, skipped int, err error)
}
