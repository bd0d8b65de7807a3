// Command portal serves the government services portal: the services
// catalogue, the passport, driving license and contact forms, and their
// confirmation pages.
//
//	@title			Government Services Portal API
//	@version		1.0
//	@description	Service catalogue, confirmation content and form validation for the government services portal.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/govservices/portal/docs"
	"github.com/govservices/portal/internal/api"
	"github.com/govservices/portal/internal/catalogue"
	"github.com/govservices/portal/internal/config"
	"github.com/govservices/portal/internal/forms"
	"github.com/govservices/portal/internal/handler"
	"github.com/govservices/portal/internal/logger"
	"github.com/govservices/portal/internal/metrics"
	"github.com/govservices/portal/internal/middleware"
	"github.com/govservices/portal/internal/receipt"
	"github.com/govservices/portal/internal/session"
	"github.com/govservices/portal/internal/static"
	"github.com/govservices/portal/internal/template"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init -g cmd/portal/main.go -d ../../ -o ../../docs --parseInternal

func main() {
	app := &cli.App{
		Name:  "portal",
		Usage: "Government services portal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "catalogue",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML services catalogue (embedded catalogue when empty)",
				EnvVars: []string{"CATALOGUE"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Form posts allowed per minute per IP address",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.DurationFlag{
				Name:    "session-ttl",
				Value:   config.DefaultSessionTTL,
				Usage:   "Idle time after which a visitor's form state is discarded",
				EnvVars: []string{"SESSION_TTL"},
			},
			&cli.BoolFlag{
				Name:    "secure-cookies",
				Usage:   "Mark the session cookie Secure (serve behind TLS)",
				EnvVars: []string{"SECURE_COOKIES"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	port := c.String("port")

	if err := forms.Check(); err != nil {
		return fmt.Errorf("invalid form declaration: %w", err)
	}

	cat, err := catalogue.Load(c.String("catalogue"))
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	slog.Info("catalogue loaded", "services", len(cat.Services))

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	m := metrics.New()

	store, err := session.NewStore(c.Duration("session-ttl"))
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	store.OnChange(m.SetActiveSessions)

	h, err := handler.New(tmpl, cat, store, receipt.NewIssuer(), m,
		handler.WithSecureCookies(c.Bool("secure-cookies")))
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	apiHandler, err := api.New(cat)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	limiter, err := middleware.New(c.Int("rate-limit"))
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()
	limiter.OnReject(m.IncrementRateLimited)

	mux := http.NewServeMux()
	static.Register(mux)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	apiHandler.RegisterRoutes(mux)
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      middleware.CacheControl(limiter.Middleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return store.Run(gctx)
	})

	g.Go(func() error {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
