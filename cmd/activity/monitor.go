package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"activity-tracker/internal/events/adapters/console"
	"activity-tracker/internal/events/adapters/csvlog"
	"activity-tracker/internal/events/adapters/macos"
	"activity-tracker/internal/events/core/usecase"
)

var (
	monitorLogPath string
	monitorPoll    time.Duration
	monitorIdle    time.Duration
	monitorBrowser string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Record foreground activity to the event log",
	Long: `Poll the frontmost application, the active browser tab and the idle
time, and append one event per state change to the CSV log. Runs until
interrupted; every completed append is already durable.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().StringVar(&monitorLogPath, "log", "", "path of the CSV event log")
	monitorCmd.Flags().DurationVar(&monitorPoll, "poll", 0, "poll interval")
	monitorCmd.Flags().DurationVar(&monitorIdle, "idle-threshold", 0, "input silence before the user counts as idle")
	monitorCmd.Flags().StringVar(&monitorBrowser, "browser", "", "application name whose active tab is tracked")

	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if monitorLogPath != "" {
		logPath = monitorLogPath
	}
	poll := cfg.Monitor.PollInterval()
	if monitorPoll > 0 {
		poll = monitorPoll
	}
	idle := cfg.Monitor.IdleThreshold()
	if monitorIdle > 0 {
		idle = monitorIdle
	}
	browser := cfg.Monitor.BrowserApp
	if monitorBrowser != "" {
		browser = monitorBrowser
	}

	printer := console.NewPrinter(os.Stdout)
	uc := usecase.NewTrackActivityUseCase(
		csvlog.New(logPath),
		macos.NewSignalSource(),
		usecase.TrackConfig{
			BrowserApp:    browser,
			IdleThreshold: idle,
			OnEvent:       printer.Print,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("monitoring (idle threshold: %s, poll: %s, log: %s)", idle, poll, logPath)

	err = uc.Run(ctx, poll, func(err error) {
		log.Printf("monitor: %v", err)
	})
	if errors.Is(err, context.Canceled) {
		log.Println("stopped")
		return nil
	}
	return err
}
