package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"slashkit/internal/adapters/discord"
	"slashkit/internal/adapters/discord/commands"
	"slashkit/internal/config"
	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Closer is the part of the discord client the app shuts down.
type Closer interface {
	Close() error
}

type App struct {
	config        *config.Config
	client        *discord.Client
	closer        Closer
	metricsServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	session, err := discord.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	client := newClient(session, cfg)

	return &App{
		config: cfg,
		client: client,
		closer: client,
	}, nil
}

func newClient(session *discordgo.Session, cfg *config.Config) *discord.Client {
	handler := &commands.BotHandler{Roles: session}

	return discord.NewClient(session, discord.Options{
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		DeployGlobally: cfg.DeployGlobally,
		DeployOnChange: cfg.DeployOnChange,
		Hooks:          newHooks(),
	}).
		Inhibitors(commands.Inhibitors()...).
		Commands(commands.All(handler)...).
		Events(domain.Event{Name: "ready", Once: true, Handler: commands.ReadyHandler})
}

func (a *App) Run(ctx context.Context) error {
	a.startMetricsServer()

	if err := a.client.Login(ctx); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	slog.Info("Bot started", "guild_id", a.config.GuildID, "global", a.config.DeployGlobally)
	return nil
}

func (a *App) startMetricsServer() {
	if a.config.MetricsAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server listening", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	return errors.Join(errs...)
}
