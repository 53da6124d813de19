package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-sync/core/config"
	"inventory-sync/core/loader"
	"inventory-sync/core/logger"
	"inventory-sync/core/middleware/auth"
	"inventory-sync/core/middleware/rayid"
	"inventory-sync/core/netbox"
	"inventory-sync/core/pdq"
	"inventory-sync/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory sync daemon",
	Long: `Starts the scheduling loop and the status HTTP server.
Cycles run back to back with a fixed delay between them; a slow cycle
lengthens the effective polling period rather than overlapping runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Netbox.Validate(); err != nil {
			logg.Fatal("Invalid registry configuration", zap.Error(err))
		}
		if cfg.PDQ.Enabled {
			if err := cfg.PDQ.Validate(); err != nil {
				logg.Fatal("Invalid source configuration", zap.Error(err))
			}
		}

		// 3. Initialize Gateways and Sync Service
		source := pdq.NewClient(cfg.PDQ, logg)
		registry := netbox.NewClient(cfg.Netbox, logg)
		service := inventory.NewService(source, registry, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(service, logg))

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting status server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Scheduling Loop
		ctx, cancel := context.WithCancel(context.Background())
		if cfg.PDQ.Enabled {
			go scheduleCycles(ctx, service, cfg.Sync, logg)
		} else {
			logg.Warn("Source connector is disabled; no cycles will be scheduled")
		}

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		cancel()
		_ = app.Shutdown()
	},
}

// scheduleCycles runs sync cycles with a fixed delay after each completion.
func scheduleCycles(ctx context.Context, service *inventory.Service, cfg inventory.Config, logg *zap.Logger) {
	interval := cfg.IntervalDuration()

	if !cfg.RunOnStart {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}

	for {
		runCycle(ctx, service, logg)

		logg.Info("Sleeping until next cycle", zap.Duration("interval", interval))
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func runCycle(ctx context.Context, service *inventory.Service, logg *zap.Logger) {
	logg.Info("Starting sync cycle")
	report, err := service.RunCycle(ctx)
	if err != nil {
		logg.Error("Sync cycle aborted", zap.Error(err))
		return
	}
	logCycleReport(logg, report)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
