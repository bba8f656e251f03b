// Package csvlog persists activity events as an append-only CSV file,
// one record per line: timestamp,event,detail. The timestamp is RFC3339
// in local time with offset. Quoting follows standard CSV escaping.
package csvlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"activity-tracker/internal/events/core/domain"
	"activity-tracker/internal/events/core/ports"
)

var header = []string{"timestamp", "event", "detail"}

type Log struct {
	path string

	// Serializes appends within this process. Cross-process safety comes
	// from O_APPEND single-record writes, not from locking.
	mu sync.Mutex
}

func New(path string) *Log {
	return &Log{path: path}
}

var _ ports.EventLogPort = (*Log)(nil)

// Append writes one record to the end of the file, creating it (with a
// header row) on first use. Each record is flushed as a unit so a
// concurrent reader never observes a partial line.
func (l *Log) Append(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	record := []string{
		e.Timestamp.Format(time.RFC3339),
		string(e.Kind),
		e.Detail,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush record: %w", err)
	}
	return nil
}

// ReadAll parses the whole log in order. Records that fail to parse are
// skipped and counted; a missing file is an empty log. Reading is safe
// while another process appends: at worst the reader stops at the last
// fully written line.
func (l *Log) ReadAll(ctx context.Context) ([]domain.Event, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var (
		events  []domain.Event
		skipped int
	)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return events, skipped, fmt.Errorf("read log: %w", err)
		}

		e, ok := decode(record)
		if !ok {
			if isHeader(record) {
				continue
			}
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}

func decode(record []string) (domain.Event, bool) {
	if len(record) < 2 {
		return domain.Event{}, false
	}
	ts, err := time.Parse(time.RFC3339, record[0])
	if err != nil {
		return domain.Event{}, false
	}
	kind, ok := domain.ParseKind(record[1])
	if !ok {
		return domain.Event{}, false
	}
	detail := ""
	if len(record) > 2 {
		detail = record[2]
	}
	return domain.Event{Timestamp: ts, Kind: kind, Detail: detail}, true
}

func isHeader(record []string) bool {
	return len(record) == len(header) &&
		record[0] == header[0] &&
		record[1] == header[1] &&
		record[2] == header[2]
}
