package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chest-sorter/core/config"
	"chest-sorter/core/loader"
	"chest-sorter/core/logger"
	"chest-sorter/core/middleware/auth"
	"chest-sorter/core/middleware/rayid"

	"chest-sorter/feature/container"
	"chest-sorter/feature/integrity"
	"chest-sorter/feature/settings"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "chest-sorter/docs/swagger"
)

// @title Chest Sorter API
// @version 1.0
// @description API for sorting storage containers.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chest sorter server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log, logger.World(cfg.Server.World))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the container backend
		b, err := openBackends(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}
		logg = logg.With(logger.Backend(b.store.Name()))

		// 4. Shared sorter settings
		settingsStore := settings.NewStore(settings.FromConfig(cfg.Sorter))
		containers := container.NewService(b.store, settingsStore, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(settings.NewFeature(settingsStore, logg))
		mgr.Register(container.NewFeature(containers))
		mgr.Register(integrity.NewFeature(b.client, cfg.Storage.Bucket, logg, b.db, b.store))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. A panicking handler fails its request, not the server
		app.Use(fiberrecover.New(fiberrecover.Config{EnableStackTrace: true}))

		// 3. Request logging with the ray id attached
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

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Auth protects every route registered after it
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		// 6. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(":" + cfg.Server.Port)
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed to start: %w", err)
		case <-c:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
