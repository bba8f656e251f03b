package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"activity-tracker/internal/metrics/core/domain"
	"activity-tracker/internal/metrics/core/ports"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidRange     = errors.New("invalid time range")
)

type ListActivitiesInput struct {
	Dimension string // "app" | "tab" | "site"

	// From/To bound the query; zero values mean unbounded.
	From time.Time
	To   time.Time
}

type ListActivitiesOutput struct {
	Dimension      domain.Dimension
	Buckets        []domain.Bucket
	SkippedRecords int
	GeneratedAt    time.Time
}

// ListActivitiesUseCase reconstructs sessions from the event log and rolls
// them into per-day totals. Every execution recomputes from the current
// log contents; nothing is cached between queries.
type ListActivitiesUseCase struct {
	events ports.EventSourcePort
	loc    *time.Location
	now    func() time.Time
}

func NewListActivitiesUseCase(events ports.EventSourcePort) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		events: events,
		loc:    time.Local,
		now:    time.Now,
	}
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, in ListActivitiesInput) (*ListActivitiesOutput, error) {
	dim, err := parseDimension(in.Dimension)
	if err != nil {
		return nil, err
	}
	if !in.From.IsZero() && !in.To.IsZero() && in.To.Before(in.From) {
		return nil, ErrInvalidRange
	}

	events, skipped, err := uc.events.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}

	now := uc.now()
	rec := domain.Reconstruct(events)
	buckets := domain.Aggregate(rec.Sessions(dim), domain.Range{From: in.From, To: in.To}, now, uc.loc)

	return &ListActivitiesOutput{
		Dimension:      dim,
		Buckets:        buckets,
		SkippedRecords: skipped,
		GeneratedAt:    now,
	}, nil
}

func parseDimension(s string) (domain.Dimension, error) {
	switch domain.Dimension(s) {
	case domain.DimensionApp, domain.DimensionTab, domain.DimensionSite:
		return domain.Dimension(s), nil
	case "":
		return domain.DimensionApp, nil
	}
	return "", ErrInvalidDimension
}
