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
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"newtab/internal/access"
	"newtab/internal/api"
	"newtab/internal/links"
	"newtab/internal/web"
)

const defaultSecret = "changeme-secret"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load config, connect and bootstrap tables
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Printf("Config loaded (port: %d, db: %s)", cfg.Server.Port, describeDB(db.Dialect, cfg.Database))
	if cfg.Access.Secret == defaultSecret {
		log.Println("WARN: access.secret is the default value, set NEWTAB_ACCESS_SECRET")
	}

	// 2. Domain services
	keys := access.NewKeyStore(db)
	gate := access.NewGate(keys, cfg.Access.Secret, cfg.Access.CookieName)
	repo := links.NewRepository(db)

	// 3. Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          api.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	// 4. Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 5. Access routes (no key required)
	access.RegisterRoutes(app, access.NewHandler(gate))

	// 6. Pages, search and static assets
	pages, err := web.NewHandler(gate, repo, web.Options{
		EngineURL:  cfg.Search.EngineURL,
		RequestURL: cfg.Access.RequestURL,
	})
	if err != nil {
		return err
	}
	web.RegisterRoutes(app, pages)

	// 7. Link API (key required)
	api.RegisterLinkRoutes(app, api.NewLinkHandler(repo), access.Middleware(gate))

	// 8. Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
