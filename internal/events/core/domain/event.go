package domain

import "time"

// Kind identifies what an event records.
type Kind string

const (
	KindStart    Kind = "START"
	KindApp      Kind = "APP"
	KindTab      Kind = "TAB"
	KindInactive Kind = "INACTIVE"
	KindActive   Kind = "ACTIVE"
)

// ParseKind reports whether s names a known event kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindStart, KindApp, KindTab, KindInactive, KindActive:
		return Kind(s), true
	}
	return "", false
}

// Event is a single immutable fact in the activity log.
// Detail carries the app name or tab title; it is empty for
// START, INACTIVE and ACTIVE events.
type Event struct {
	Timestamp time.Time
	Kind      Kind
	Detail    string
}
