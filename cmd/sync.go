package cmd

import (
	"context"
	"fmt"

	"inventory-sync/core/config"
	"inventory-sync/core/logger"
	"inventory-sync/core/netbox"
	"inventory-sync/core/pdq"
	"inventory-sync/feature/inventory"
	"inventory-sync/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single sync cycle and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a single sync cycle and exit",
	Long: `Fetches fresh snapshots from the source inventory and the asset
registry, reconciles them once, and prints the cycle report. Useful for
operator-driven runs and cron-style scheduling.`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if err := cfg.Netbox.Validate(); err != nil {
		return fmt.Errorf("invalid registry configuration: %w", err)
	}
	if !cfg.PDQ.Enabled {
		return fmt.Errorf("source connector is disabled in config")
	}
	if err := cfg.PDQ.Validate(); err != nil {
		return fmt.Errorf("invalid source configuration: %w", err)
	}

	source := pdq.NewClient(cfg.PDQ, l)
	registry := netbox.NewClient(cfg.Netbox, l)
	service := inventory.NewService(source, registry, l)

	l.Info("Starting sync cycle")
	report, err := service.RunCycle(context.Background())
	if err != nil {
		return fmt.Errorf("sync cycle aborted: %w", err)
	}

	logCycleReport(l, report)
	return nil
}

// logCycleReport prints a formatted cycle report using the logger.
func logCycleReport(l *zap.Logger, report *models.CycleReport) {
	l.Info("Sync cycle completed",
		zap.Duration("duration", report.Duration),
		zap.Int("devices_fetched", report.DevicesFetched),
		zap.Int("manufacturers_created", report.ManufacturersCreated),
		zap.Int("device_types_created", report.DeviceTypesCreated),
		zap.Int("assets_created", report.AssetsCreated),
		zap.Int("assets_updated", report.AssetsUpdated),
		zap.Int("assets_retired", report.AssetsRetired),
		zap.Int("devices_skipped", report.DevicesSkipped),
		zap.Int("errors", len(report.Errors)),
	)

	// Show a sample of errors (max 5 for the logger)
	maxShow := 5
	if len(report.Errors) < maxShow {
		maxShow = len(report.Errors)
	}
	for i := 0; i < maxShow; i++ {
		l.Warn("Cycle error", zap.String("detail", report.Errors[i]))
	}
	if len(report.Errors) > maxShow {
		l.Warn("Additional errors not shown", zap.Int("count", len(report.Errors)-maxShow))
	}
}
