package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ekta-240/provider-pulse/internal/prefs"
	"github.com/ekta-240/provider-pulse/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: validation statistics, the provider
directory, the manual review queue, and the assistant.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, client, err := loadDeps()
	if err != nil {
		return err
	}

	store, err := prefs.NewStore()
	if err != nil {
		// The dashboard works without persisted preferences; default to
		// dark mode and keep going.
		slog.Warn("preferences unavailable, using defaults", "error", err)
		store = nil
	}

	err = tui.Run(cmd.Context(), tui.Config{
		API:         client,
		Prefs:       store,
		BatchType:   cfg.Batch.Type,
		LoadTimeout: cfg.API.Timeout,
	})
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
