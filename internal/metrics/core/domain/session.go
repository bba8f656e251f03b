package domain

import (
	"net/url"
	"strings"
	"time"

	eventsdomain "activity-tracker/internal/events/core/domain"
)

// Dimension is one of the activity axes sessions are tracked on.
type Dimension string

const (
	DimensionApp  Dimension = "app"
	DimensionTab  Dimension = "tab"
	DimensionSite Dimension = "site"
)

// Session is a derived interval during which one activity was frontmost
// and the user was not idle. An open session has no end yet; its duration
// keeps growing until the log says otherwise.
type Session struct {
	Key   string
	Start time.Time
	End   time.Time
	Open  bool
}

// Duration returns the session length, using now as the end of an open
// session. Never negative.
func (s Session) Duration(now time.Time) time.Duration {
	end := s.End
	if s.Open {
		end = now
	}
	d := end.Sub(s.Start)
	if d < 0 {
		return 0
	}
	return d
}

// IdlePeriod is an interval with no user input, bounded by an INACTIVE
// event and the next ACTIVE (or still open at end of log).
type IdlePeriod struct {
	Start time.Time
	End   time.Time
	Open  bool
}

// Reconstruction is the full derived view of one pass over the log.
type Reconstruction struct {
	App  []Session
	Tab  []Session
	Idle []IdlePeriod
}

// Sessions returns the session sequence for a dimension. Site sessions
// are derived from tab sessions by keying on the URL host.
func (r Reconstruction) Sessions(dim Dimension) []Session {
	switch dim {
	case DimensionApp:
		return r.App
	case DimensionTab:
		return r.Tab
	case DimensionSite:
		return siteSessions(r.Tab)
	}
	return nil
}

// Reconstruct replays the ordered event log into per-dimension sessions
// and idle periods. It is a pure function of the event sequence: the same
// log always yields the same sessions. Events sharing a timestamp are
// processed in log order, so zero-duration sessions are possible and valid.
func Reconstruct(events []eventsdomain.Event) Reconstruction {
	var (
		app  track
		tab  track
		idle idleTrack
	)

	for _, e := range events {
		switch e.Kind {
		case eventsdomain.KindStart:
			// Process restart: whatever was open ended, at the latest, here.
			app.close(e.Timestamp)
			tab.close(e.Timestamp)
			idle.close(e.Timestamp)
		case eventsdomain.KindInactive:
			app.close(e.Timestamp)
			tab.close(e.Timestamp)
			idle.open(e.Timestamp)
		case eventsdomain.KindActive:
			idle.close(e.Timestamp)
			// Sessions reopen on the next APP/TAB event, not here.
		case eventsdomain.KindApp:
			app.close(e.Timestamp)
			app.open(e.Detail, e.Timestamp)
			// An app switch ends the current tab either way: tabs are
			// meaningless outside the browser, and switching back to the
			// browser produces a fresh TAB event.
			tab.close(e.Timestamp)
		case eventsdomain.KindTab:
			tab.close(e.Timestamp)
			tab.open(e.Detail, e.Timestamp)
		}
	}

	return Reconstruction{
		App:  app.finish(),
		Tab:  tab.finish(),
		Idle: idle.finish(),
	}
}

// track is one dimension's reducer state: the currently open session, if any.
type track struct {
	key      string
	start    time.Time
	active   bool
	sessions []Session
}

func (t *track) open(key string, at time.Time) {
	t.key = key
	t.start = at
	t.active = true
}

func (t *track) close(at time.Time) {
	if !t.active {
		return
	}
	t.sessions = append(t.sessions, Session{Key: t.key, Start: t.start, End: at})
	t.active = false
}

func (t *track) finish() []Session {
	if t.active {
		t.sessions = append(t.sessions, Session{Key: t.key, Start: t.start, Open: true})
		t.active = false
	}
	return t.sessions
}

type idleTrack struct {
	start   time.Time
	active  bool
	periods []IdlePeriod
}

func (t *idleTrack) open(at time.Time) {
	if t.active {
		return
	}
	t.start = at
	t.active = true
}

func (t *idleTrack) close(at time.Time) {
	if !t.active {
		return
	}
	t.periods = append(t.periods, IdlePeriod{Start: t.start, End: at})
	t.active = false
}

func (t *idleTrack) finish() []IdlePeriod {
	if t.active {
		t.periods = append(t.periods, IdlePeriod{Start: t.start, Open: true})
		t.active = false
	}
	return t.periods
}

// siteSessions maps tab sessions onto their URL host. Tab details are
// "title | url"; sessions without a parseable host are dropped.
func siteSessions(tabs []Session) []Session {
	var out []Session
	for _, s := range tabs {
		host := SiteOf(s.Key)
		if host == "" {
			continue
		}
		s.Key = host
		out = append(out, s)
	}
	return out
}

// SiteOf extracts the URL host from a "title | url" tab key, or "".
func SiteOf(tabKey string) string {
	_, rawURL, found := strings.Cut(tabKey, " | ")
	if !found {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Host
}

// TabTitle returns the title part of a "title | url" tab key.
func TabTitle(tabKey string) string {
	title, _, _ := strings.Cut(tabKey, " | ")
	return title
}
