package usecase

import (
	"context"
	"fmt"
	"time"

	"activity-tracker/internal/events/core/domain"
	"activity-tracker/internal/events/core/ports"
)

const (
	DefaultIdleThreshold = 60 * time.Second
	DefaultPollInterval  = 5 * time.Second
	DefaultBrowserApp    = "Google Chrome"
)

type TrackConfig struct {
	// BrowserApp is the application name whose active tab is tracked.
	BrowserApp string

	// IdleThreshold is the amount of input silence after which the user
	// is considered idle. Idle kicks in at exactly the threshold.
	IdleThreshold time.Duration

	// OnEvent, if set, is called for every event that was successfully
	// appended to the log (console echo).
	OnEvent func(domain.Event)
}

// TrackActivityUseCase debounces raw OS samples into state transitions and
// appends one event per transition. It holds the "last emitted" state
// explicitly so it can be driven by synthetic samples in tests.
type TrackActivityUseCase struct {
	log     ports.EventLogPort
	signals ports.SignalSourcePort
	cfg     TrackConfig

	now func() time.Time

	lastApp string
	lastTab string
	idle    bool
}

func NewTrackActivityUseCase(log ports.EventLogPort, signals ports.SignalSourcePort, cfg TrackConfig) *TrackActivityUseCase {
	if cfg.BrowserApp == "" {
		cfg.BrowserApp = DefaultBrowserApp
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = DefaultIdleThreshold
	}
	return &TrackActivityUseCase{
		log:     log,
		signals: signals,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Start records a START event and resets the machine to Unknown.
func (uc *TrackActivityUseCase) Start(ctx context.Context) error {
	uc.lastApp = ""
	uc.lastTab = ""
	uc.idle = false
	return uc.emit(ctx, domain.KindStart, "")
}

// Tick samples all signals once and emits whatever transitions they imply.
// The returned error is always non-fatal: the caller reports it and keeps
// ticking. State is only advanced after a successful append, so a failed
// write is retried implicitly on the next tick.
func (uc *TrackActivityUseCase) Tick(ctx context.Context) error {
	idleSecs, err := uc.signals.IdleSeconds(ctx)
	if err != nil {
		return fmt.Errorf("idle signal: %w", err)
	}

	if time.Duration(idleSecs*float64(time.Second)) >= uc.cfg.IdleThreshold {
		if !uc.idle {
			if err := uc.emit(ctx, domain.KindInactive, ""); err != nil {
				return err
			}
			uc.idle = true
			// Force re-emission of app and tab once the user returns.
			uc.lastApp = ""
			uc.lastTab = ""
		}
		return nil
	}

	if uc.idle {
		if err := uc.emit(ctx, domain.KindActive, ""); err != nil {
			return err
		}
		uc.idle = false
		// Fall through: re-evaluate app and tab in the same tick.
	}

	app, err := uc.signals.FrontmostApp(ctx)
	if err != nil {
		return fmt.Errorf("app signal: %w", err)
	}
	if app != "" && app != uc.lastApp {
		if err := uc.emit(ctx, domain.KindApp, app); err != nil {
			return err
		}
		uc.lastApp = app
		uc.lastTab = ""
	}

	if uc.lastApp != uc.cfg.BrowserApp {
		return nil
	}

	tab, err := uc.signals.FrontmostTabTitle(ctx)
	if err != nil {
		return fmt.Errorf("tab signal: %w", err)
	}
	if tab != "" && tab != uc.lastTab {
		if err := uc.emit(ctx, domain.KindTab, tab); err != nil {
			return err
		}
		uc.lastTab = tab
	}

	return nil
}

// Run emits START, then ticks at the given interval until ctx is cancelled.
// Ticks are strictly serial. Non-fatal tick errors are passed to report.
func (uc *TrackActivityUseCase) Run(ctx context.Context, interval time.Duration, report func(error)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if err := uc.Start(ctx); err != nil && report != nil {
		report(err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := uc.Tick(ctx); err != nil && report != nil {
				report(err)
			}
		}
	}
}

func (uc *TrackActivityUseCase) emit(ctx context.Context, kind domain.Kind, detail string) error {
	e := domain.Event{
		Timestamp: uc.now(),
		Kind:      kind,
		Detail:    detail,
	}
	if err := uc.log.Append(ctx, e); err != nil {
		return fmt.Errorf("append %s event: %w", kind, err)
	}
	if uc.cfg.OnEvent != nil {
		uc.cfg.OnEvent(e)
	}
	return nil
}
