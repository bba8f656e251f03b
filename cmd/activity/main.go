package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"activity-tracker/internal/config"
)

var version = "0.1.0"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:     "activity",
	Short:   "Track and browse foreground application usage",
	Long:    "activity records which application (and browser tab) is frontmost\nto an append-only CSV log, and serves per-day usage summaries over HTTP.",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}
