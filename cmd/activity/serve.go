package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "activity-tracker/docs"
	"activity-tracker/internal/events/adapters/csvlog"
	metricsHttp "activity-tracker/internal/metrics/adapters/http/fiber"
	metricsUsecase "activity-tracker/internal/metrics/core/usecase"
)

var (
	serveLogPath string
	serveHost    string
	servePort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the activity viewer and JSON API",
	Long: `Start a local HTTP server over the event log. Every request rereads
the log, so the viewer works while the monitor keeps appending.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveLogPath, "log", "", "path of the CSV event log")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "host to bind to")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on")

	rootCmd.AddCommand(serveCmd)
}

// @title Activity Tracker API
// @version 1.0
// @description Read-only usage statistics reconstructed from the activity event log.
// @BasePath /
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if serveLogPath != "" {
		logPath = serveLogPath
	}
	host := cfg.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	eventLog := csvlog.New(logPath)

	handler := metricsHttp.NewActivityHandler(
		metricsUsecase.NewListActivitiesUseCase(eventLog),
		metricsUsecase.NewGetCurrentActivityUseCase(eventLog),
		metricsUsecase.NewGetDayReportUseCase(eventLog),
	)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Get("/", handler.DayPage)
	app.Get("/api/activities", handler.ListActivities)
	app.Get("/api/current", handler.CurrentActivity)
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	addr := fmt.Sprintf("%s:%d", host, port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("activity viewer running at http://%s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
	return nil
}
