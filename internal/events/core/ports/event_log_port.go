package ports

import (
	"context"

	"activity-tracker/internal/events/core/domain"
)

type EventLogPort interface {
	// Append durably writes one event to the end of the log.
	// The log is append-only; records are never rewritten or reordered.
	Append(ctx context.Context, e domain.Event) error

	// ReadAll returns every parseable event in log order along with the
	// number of records that had to be skipped because they did not parse.
	// A skipped record is a warning, not an error.
	ReadAll(ctx context.Context) (events []domain.Event, skipped int, err error)
}
