package cmd

import (
	"time"

	"corpus-builder/core/loader"
	"corpus-builder/core/logger"
	"corpus-builder/core/middleware/auth"
	"corpus-builder/core/middleware/rayid"
	"corpus-builder/core/storage"
	"corpus-builder/feature/corpus"
	"corpus-builder/feature/inspect"
	"corpus-builder/feature/integrity"
	"corpus-builder/feature/merge"
	"corpus-builder/feature/persist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "corpus-builder/docs/swagger"
)

// @title Corpus Builder API
// @version 1.0
// @description Read-only API over the reconciled maps, monsters and items corpus.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus over HTTP",
	Long:  `Starts a read-only HTTP API over the corpus directory, plus item inspection and the integrity checks.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Storage is optional; without it the integrity feature stays unloaded
		var client storage.Client
		if c, err := storage.NewClient(e.cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable", zap.Error(err))
		} else {
			client = c
		}

		b := e.backends()
		defer b.handle.Close()

		ctx, stop := signalContext(cmd.Context())
		defer stop()

		mgr := loader.NewManager(logg)
		ttl := time.Duration(e.cfg.Server.IndexTTLSeconds) * time.Second
		store := e.store(persist.Options{})
		corpusFeature := corpus.NewFeature(store, ttl, logg)
		if _, err := corpusFeature.Watch(ctx); err != nil {
			logg.Warn("Corpus watch disabled, aggregates refresh on TTL only", zap.Error(err))
		}
		mgr.Register(corpusFeature)
		mgr.Register(inspect.NewFeature(merge.NewItemAdapter(b.db, b.api, b.tree, store), ttl, logg))
		mgr.Register(integrity.NewFeature(client, e.cfg.Storage, b.handle, logg))

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.IP()),
			)
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !e.cfg.Server.Protected() {
			logg.Warn("No API key configured, the API is open")
		}
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			errCh <- app.Listen(e.cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
