package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	eventsdomain "activity-tracker/internal/events/core/domain"
	"activity-tracker/internal/metrics/core/domain"
	"activity-tracker/internal/metrics/core/ports"
)

var ErrInvalidDate = errors.New("invalid date")

// TopN caps the ranked panels on the day report.
const TopN = 10

type GetDayReportInput struct {
	// Date selects the local calendar day ("2006-01-02"). Empty picks the
	// most recent day present in the log, falling back to today.
	Date string
}

type TimelineEvent struct {
	Timestamp time.Time
	Kind      eventsdomain.Kind
	Detail    string

	// Duration runs until the next event of the day, or until now for
	// the last one.
	Duration time.Duration
}

// DayReport is everything the viewer page shows for one day.
type DayReport struct {
	Date  string
	Dates []string // all days present in the log, newest first

	TopApps  []domain.Bucket
	TopTabs  []domain.Bucket
	TopSites []domain.Bucket

	ActiveTime  time.Duration
	EventCount  int
	UniqueApps  int
	UniqueTabs  int
	UniqueSites int

	Timeline       []TimelineEvent
	SkippedRecords int
	GeneratedAt    time.Time
}

type GetDayReportUseCase struct {
	events ports.EventSourcePort
	loc    *time.Location
	now    func() time.Time
}

func NewGetDayReportUseCase(events ports.EventSourcePort) *GetDayReportUseCase {
	return &GetDayReportUseCase{
		events: events,
		loc:    time.Local,
		now:    time.Now,
	}
}

func (uc *GetDayReportUseCase) Execute(ctx context.Context, in GetDayReportInput) (*DayReport, error) {
	events, skipped, err := uc.events.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read event log: %w", err)
	}

	now := uc.now()
	dates := uc.availableDates(events)

	date := in.Date
	if date == "" {
		if len(dates) > 0 {
			date = dates[0]
		} else {
			date = domain.Day(now, uc.loc)
		}
	}
	dayRange, err := domain.DayRange(date, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	rec := domain.Reconstruct(events)
	apps := domain.Aggregate(rec.Sessions(domain.DimensionApp), dayRange, now, uc.loc)
	tabs := domain.Aggregate(rec.Sessions(domain.DimensionTab), dayRange, now, uc.loc)
	sites := domain.Aggregate(rec.Sessions(domain.DimensionSite), dayRange, now, uc.loc)

	var active time.Duration
	for _, b := range apps {
		active += b.Total
	}

	report := &DayReport{
		Date:           date,
		Dates:          dates,
		TopApps:        top(apps),
		TopTabs:        top(tabs),
		TopSites:       top(sites),
		ActiveTime:     active,
		UniqueApps:     len(apps),
		UniqueTabs:     len(tabs),
		UniqueSites:    len(sites),
		Timeline:       uc.timeline(events, date, now),
		SkippedRecords: skipped,
		GeneratedAt:    now,
	}
	report.EventCount = len(report.Timeline)
	return report, nil
}

func (uc *GetDayReportUseCase) availableDates(events []eventsdomain.Event) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, e := range events {
		day := domain.Day(e.Timestamp, uc.loc)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func (uc *GetDayReportUseCase) timeline(events []eventsdomain.Event, date string, now time.Time) []TimelineEvent {
	var day []eventsdomain.Event
	for _, e := range events {
		if domain.Day(e.Timestamp, uc.loc) == date {
			day = append(day, e)
		}
	}

	out := make([]TimelineEvent, len(day))
	for i, e := range day {
		end := now
		if i+1 < len(day) {
			end = day[i+1].Timestamp
		}
		d := end.Sub(e.Timestamp)
		if d < 0 {
			d = 0
		}
		out[i] = TimelineEvent{
			Timestamp: e.Timestamp,
			Kind:      e.Kind,
			Detail:    e.Detail,
			Duration:  d,
		}
	}
	return out
}

func top(buckets []domain.Bucket) []domain.Bucket {
	if len(buckets) > TopN {
		return buckets[:TopN]
	}
	return buckets
}
