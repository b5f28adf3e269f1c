package deploy

import (
	"context"
	"fmt"
	"log/slog"

	"slashkit/internal/core/domain"
	"slashkit/internal/core/ports"
	"slashkit/internal/metrics"
)

type Result struct {
	Deployed bool
	Commands int
}

// Synchronizer keeps one remote command set in line with the local commands.
// Concurrent calls are not coordinated; callers serialize them.
type Synchronizer struct {
	store  ports.RemoteCommandStore
	global bool
	hooks  *domain.Hooks
}

// NewSynchronizer creates a synchronizer for store. With global set, commands
// marked DontDeployGlobally are left out.
func NewSynchronizer(store ports.RemoteCommandStore, global bool, hooks *domain.Hooks) *Synchronizer {
	return &Synchronizer{
		store:  store,
		global: global,
		hooks:  hooks,
	}
}

// SynchronizeIfChanged pushes the local set only when it differs from the
// remote one. Remote errors are returned as is, nothing is retried.
func (s *Synchronizer) SynchronizeIfChanged(ctx context.Context, commands []domain.Command) (Result, error) {
	scope := s.store.Scope()

	local, err := NormalizeCommands(s.deployable(commands))
	if err != nil {
		return Result{}, err
	}

	existing, err := s.store.Fetch(ctx)
	if err != nil {
		metrics.Deployments.WithLabelValues(scope, "error").Inc()
		return Result{}, fmt.Errorf("fetch remote commands (%s): %w", scope, err)
	}

	remote, err := NormalizeAll(existing)
	if err != nil {
		return Result{}, err
	}

	if Equal(local, remote) {
		slog.Info("Remote commands up to date", "scope", scope, "count", len(local))
		metrics.Deployments.WithLabelValues(scope, "unchanged").Inc()
		return Result{Commands: len(local)}, nil
	}

	slog.Info("Remote commands changed, deploying", "scope", scope, "local", len(local), "remote", len(remote))
	if err := s.push(ctx, local); err != nil {
		return Result{}, err
	}
	return Result{Deployed: true, Commands: len(local)}, nil
}

// Deploy pushes the local set without comparing it to the remote one.
func (s *Synchronizer) Deploy(ctx context.Context, commands []domain.Command) (Result, error) {
	local, err := NormalizeCommands(s.deployable(commands))
	if err != nil {
		return Result{}, err
	}
	if err := s.push(ctx, local); err != nil {
		return Result{}, err
	}
	return Result{Deployed: true, Commands: len(local)}, nil
}

func (s *Synchronizer) push(ctx context.Context, payloads []Payload) error {
	scope := s.store.Scope()

	cmds, err := ApplicationCommands(payloads)
	if err != nil {
		return err
	}

	if err := s.store.Put(ctx, cmds); err != nil {
		metrics.Deployments.WithLabelValues(scope, "error").Inc()
		return fmt.Errorf("push commands (%s): %w", scope, err)
	}

	metrics.Deployments.WithLabelValues(scope, "deployed").Inc()
	slog.Info("Deployed commands", "scope", scope, "count", len(cmds))
	s.hooks.EmitCommandsDeployed(ctx, cmds, scope)
	return nil
}

func (s *Synchronizer) deployable(commands []domain.Command) []domain.Command {
	return Deployable(commands, s.global)
}

// Deployable filters out commands that must not be deployed globally when
// global is set.
func Deployable(commands []domain.Command, global bool) []domain.Command {
	out := make([]domain.Command, 0, len(commands))
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if global && cmd.Info().DontDeployGlobally {
			continue
		}
		out = append(out, cmd)
	}
	return out
}
