package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"slashkit/internal/core/domain"
	"slashkit/internal/core/services/deploy"
	"slashkit/internal/core/services/dispatch"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrAlreadyInitialized = errors.New("client already initialized")
	ErrNotInitialized     = errors.New("client is not logged in")
	ErrNoApplicationID    = errors.New("application ID is not known yet")
	ErrNoGuildID          = errors.New("guild ID is required unless deploying globally")
)

// Session is the part of *discordgo.Session the client drives.
type Session interface {
	CommandSession
	AddHandler(handler interface{}) func()
	AddHandlerOnce(handler interface{}) func()
	Open() error
	Close() error
}

type Options struct {
	// ApplicationID defaults to the bot user ID reported by the Ready event.
	ApplicationID string
	GuildID       string
	// DeployGlobally targets the global command set instead of GuildID.
	DeployGlobally bool
	// DeployOnChange synchronizes the remote commands once the session is ready.
	DeployOnChange bool
	Hooks          *domain.Hooks
}

// Client wires commands, inhibitors and events into a discord session.
type Client struct {
	session  Session
	opts     Options
	registry *domain.Registry
	engine   *dispatch.Engine

	commands   []domain.Command
	inhibitors []*domain.Inhibitor
	events     []domain.Event

	mu          sync.Mutex
	initialized bool
	appID       string
}

func NewClient(session Session, opts Options) *Client {
	registry := domain.NewRegistry()
	return &Client{
		session:  session,
		opts:     opts,
		registry: registry,
		engine:   dispatch.NewEngine(registry, opts.Hooks),
		appID:    opts.ApplicationID,
	}
}

func (c *Client) Commands(cmds ...domain.Command) *Client {
	c.commands = append(c.commands, cmds...)
	return c
}

func (c *Client) Inhibitors(inhibitors ...*domain.Inhibitor) *Client {
	c.inhibitors = append(c.inhibitors, inhibitors...)
	return c
}

func (c *Client) Events(events ...domain.Event) *Client {
	c.events = append(c.events, events...)
	return c
}

func (c *Client) Registry() *domain.Registry {
	return c.registry
}

func (c *Client) Engine() *dispatch.Engine {
	return c.engine
}

// Login registers everything, subscribes the interaction handler and opens
// the session. It can only be called once per client.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return ErrAlreadyInitialized
	}
	c.initialized = true
	c.mu.Unlock()

	for _, inhibitor := range c.inhibitors {
		if err := c.registry.RegisterInhibitor(inhibitor); err != nil {
			return fmt.Errorf("register inhibitor: %w", err)
		}
		c.opts.Hooks.EmitInhibitorRegister(inhibitor)
		slog.Info("Registered inhibitor", "name", inhibitor.Name)
	}

	for _, cmd := range c.commands {
		if err := c.registry.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("register command: %w", err)
		}
		c.opts.Hooks.EmitCommandRegister(cmd)
		slog.Info("Registered command", "name", cmd.Info().Name, "kind", cmd.Kind())
	}
	c.registry.Seal()

	c.session.AddHandler(c.engine.HandleFunc())

	for _, event := range c.events {
		if event.Handler == nil {
			return fmt.Errorf("event %q has no handler", event.Name)
		}
		if event.Once {
			c.session.AddHandlerOnce(event.Handler)
		} else {
			c.session.AddHandler(event.Handler)
		}
		c.opts.Hooks.EmitEventRegister(event)
		slog.Info("Registered event", "name", event.Name, "once", event.Once)
	}

	if c.opts.DeployOnChange {
		syncCtx := context.WithoutCancel(ctx)
		c.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
			c.onReady(syncCtx, r)
		})
	}

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

func (c *Client) onReady(ctx context.Context, r *discordgo.Ready) {
	c.mu.Lock()
	if c.appID == "" && r != nil && r.User != nil {
		c.appID = r.User.ID
	}
	c.mu.Unlock()

	result, err := c.Sync(ctx)
	if err != nil {
		slog.Error("Failed to synchronize commands", "error", err)
		return
	}
	slog.Info("Commands synchronized", "deployed", result.Deployed, "count", result.Commands)
}

// Sync pushes the registered commands when the remote set has drifted.
func (c *Client) Sync(ctx context.Context) (deploy.Result, error) {
	s, err := c.synchronizer()
	if err != nil {
		return deploy.Result{}, err
	}
	return s.SynchronizeIfChanged(ctx, c.registry.Commands())
}

// Deploy pushes the registered commands unconditionally.
func (c *Client) Deploy(ctx context.Context) (deploy.Result, error) {
	s, err := c.synchronizer()
	if err != nil {
		return deploy.Result{}, err
	}
	return s.Deploy(ctx, c.registry.Commands())
}

// synchronizer needs a registry sealed by a successful Login.
func (c *Client) synchronizer() (*deploy.Synchronizer, error) {
	if !c.registry.Sealed() {
		return nil, ErrNotInitialized
	}

	c.mu.Lock()
	appID := c.appID
	c.mu.Unlock()

	if appID == "" {
		return nil, ErrNoApplicationID
	}

	guildID := c.opts.GuildID
	switch {
	case c.opts.DeployGlobally:
		guildID = ""
	case guildID == "":
		return nil, ErrNoGuildID
	}
	store := NewRemoteCommands(c.session, appID, guildID)
	return deploy.NewSynchronizer(store, c.opts.DeployGlobally, c.opts.Hooks), nil
}

func (c *Client) Close() error {
	return c.session.Close()
}
