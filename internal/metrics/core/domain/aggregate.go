package domain

import (
	"sort"
	"time"
)

// Bucket is the total time spent on one activity key within one local
// calendar day.
type Bucket struct {
	Day   string // "2006-01-02"
	Key   string
	Total time.Duration
}

// Range optionally bounds a query. A zero From or To means unbounded on
// that side. Validation (To before From) happens in the usecase.
type Range struct {
	From time.Time
	To   time.Time
}

const dayFormat = "2006-01-02"

// Aggregate rolls a session sequence into day buckets. Sessions are
// clipped to the range, split at every local midnight they cross, and the
// partial durations summed per (day, key). Open sessions run up to now,
// so repeated calls against an unchanged log yield growing totals.
// Output order: day ascending, then total descending, then key ascending.
func Aggregate(sessions []Session, r Range, now time.Time, loc *time.Location) []Bucket {
	if loc == nil {
		loc = time.Local
	}

	type bucketKey struct {
		day string
		key string
	}
	totals := make(map[bucketKey]time.Duration)

	for _, s := range sessions {
		start := s.Start
		end := s.End
		if s.Open {
			end = now
		}

		if !r.From.IsZero() && start.Before(r.From) {
			start = r.From
		}
		if !r.To.IsZero() && end.After(r.To) {
			end = r.To
		}
		if !end.After(start) {
			continue
		}

		for cur := start; cur.Before(end); {
			dayEnd := startOfNextDay(cur, loc)
			segEnd := dayEnd
			if end.Before(segEnd) {
				segEnd = end
			}
			k := bucketKey{day: cur.In(loc).Format(dayFormat), key: s.Key}
			totals[k] += segEnd.Sub(cur)
			cur = segEnd
		}
	}

	buckets := make([]Bucket, 0, len(totals))
	for k, total := range totals {
		buckets = append(buckets, Bucket{Day: k.day, Key: k.key, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Day != buckets[j].Day {
			return buckets[i].Day < buckets[j].Day
		}
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

func startOfNextDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}

// DayRange returns the [midnight, next midnight) range of the local
// calendar day named by day ("2006-01-02").
func DayRange(day string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation(dayFormat, day, loc)
	if err != nil {
		return Range{}, err
	}
	return Range{From: start, To: start.AddDate(0, 0, 1)}, nil
}

// Day formats an instant as its local calendar day.
func Day(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(dayFormat)
}
