package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slashkit/internal/core/domain"
	"slashkit/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

type Outcome int

const (
	// OutcomeIgnored covers unsupported interaction types, unknown commands
	// and variant mismatches.
	OutcomeIgnored Outcome = iota
	OutcomeInhibited
	OutcomeAutocompleted
	OutcomeExecuted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInhibited:
		return "inhibited"
	case OutcomeAutocompleted:
		return "autocompleted"
	case OutcomeExecuted:
		return "executed"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Engine routes interactions to the commands of a registry. It does not
// serialize across interactions; every stage of one interaction runs in
// order and is awaited before the next.
type Engine struct {
	registry *domain.Registry
	hooks    *domain.Hooks
}

func NewEngine(registry *domain.Registry, hooks *domain.Hooks) *Engine {
	return &Engine{
		registry: registry,
		hooks:    hooks,
	}
}

// Dispatch runs a single interaction through classification, inhibitors and
// handlers. Handler and inhibitor errors abort the remaining stages and are
// returned to the caller.
func (e *Engine) Dispatch(ctx context.Context, i *domain.Interaction) (Outcome, error) {
	if !i.IsCommand() && !i.IsAutocomplete() {
		return OutcomeIgnored, nil
	}

	name := i.CommandName()
	cmd, ok := e.registry.Command(name)
	if !ok {
		slog.Debug("No command registered for interaction", "name", name)
		e.record("unknown", i, OutcomeIgnored)
		return OutcomeIgnored, nil
	}

	outcome, err := e.dispatch(ctx, i, cmd)
	e.record(name, i, outcome)
	if err != nil {
		return outcome, fmt.Errorf("command %q: %w", name, err)
	}
	return outcome, nil
}

func (e *Engine) dispatch(ctx context.Context, i *domain.Interaction, cmd domain.Command) (Outcome, error) {
	if i.IsAutocomplete() {
		return e.autocomplete(ctx, i, cmd)
	}

	if i.CommandType() != cmd.Kind() {
		return OutcomeIgnored, nil
	}

	allowed, err := e.inhibit(ctx, i, cmd)
	if err != nil {
		return OutcomeFailed, err
	}
	if !allowed {
		return OutcomeInhibited, nil
	}

	switch c := cmd.(type) {
	case *domain.ChatInputCommand:
		err = e.runChatInput(ctx, i, c)
	case *domain.UserCommand:
		e.hooks.EmitCommandRun(ctx, c, i)
		if c.Run != nil {
			err = e.timed(c.Name, func() error { return c.Run(ctx, i, i.TargetUser()) })
		}
	case *domain.MessageCommand:
		e.hooks.EmitCommandRun(ctx, c, i)
		if c.Run != nil {
			err = e.timed(c.Name, func() error { return c.Run(ctx, i, i.TargetMessage()) })
		}
	default:
		return OutcomeIgnored, nil
	}

	if err != nil {
		return OutcomeFailed, err
	}
	return OutcomeExecuted, nil
}

func (e *Engine) autocomplete(ctx context.Context, i *domain.Interaction, cmd domain.Command) (Outcome, error) {
	c, ok := cmd.(*domain.ChatInputCommand)
	if !ok || c.Autocomplete == nil {
		return OutcomeIgnored, nil
	}

	e.hooks.EmitAutocompleteRun(ctx, c, i)
	if err := e.timed(c.Name, func() error { return c.Autocomplete(ctx, i) }); err != nil {
		return OutcomeFailed, fmt.Errorf("autocomplete: %w", err)
	}
	return OutcomeAutocompleted, nil
}

// inhibit evaluates the command inhibitors in declared order and stops at
// the first veto. References that do not resolve are skipped.
func (e *Engine) inhibit(ctx context.Context, i *domain.Interaction, cmd domain.Command) (bool, error) {
	ic := domain.InhibitorContext{Command: cmd}

	for _, ref := range cmd.Info().Inhibitors {
		inhibitor, ok := ref.Resolve(e.registry.Inhibitor)
		if !ok {
			slog.Debug("Skipping unresolved inhibitor", "command", cmd.Info().Name, "inhibitor", ref.String())
			continue
		}

		allowed, err := inhibitor.Run(ctx, i, ic)
		if err != nil {
			return false, fmt.Errorf("inhibitor %q: %w", inhibitor.Name, err)
		}
		e.hooks.EmitInhibitorRun(ctx, allowed, inhibitor, i, cmd)

		if !allowed {
			slog.Info("Command inhibited", "command", cmd.Info().Name, "inhibitor", inhibitor.Name)
			metrics.InhibitorVetoes.WithLabelValues(inhibitor.Name).Inc()
			return false, nil
		}
	}
	return true, nil
}

// runChatInput runs the addressed subcommand, then the command level
// handler. Both run when both are defined.
func (e *Engine) runChatInput(ctx context.Context, i *domain.Interaction, c *domain.ChatInputCommand) error {
	e.hooks.EmitCommandRun(ctx, c, i)

	group, subcommand := i.SubcommandPath()
	fn, err := c.Subcommands.Resolve(group, subcommand)
	if err != nil {
		return err
	}
	if fn != nil {
		if err := e.timed(c.Name, func() error { return fn(ctx, i) }); err != nil {
			return fmt.Errorf("subcommand %q: %w", subcommandLabel(group, subcommand), err)
		}
	}

	if c.Run != nil {
		return e.timed(c.Name, func() error { return c.Run(ctx, i) })
	}
	return nil
}

func (e *Engine) timed(command string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.HandlerDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	return err
}

func (e *Engine) record(command string, i *domain.Interaction, outcome Outcome) {
	kind := "command"
	if i.IsAutocomplete() {
		kind = "autocomplete"
	}
	metrics.Interactions.WithLabelValues(command, kind, outcome.String()).Inc()
}

func subcommandLabel(group, subcommand string) string {
	if group == "" {
		return subcommand
	}
	return group + " " + subcommand
}

// Handle dispatches i and logs the result. Errors stop at this point so one
// failing interaction never affects another.
func (e *Engine) Handle(ctx context.Context, s domain.Responder, i *discordgo.InteractionCreate) {
	interaction := domain.NewInteraction(s, i)
	name := interaction.CommandName()

	outcome, err := e.Dispatch(ctx, interaction)
	if err != nil {
		slog.Error("Interaction dispatch failed", "name", name, "outcome", outcome.String(), "error", err)
		return
	}
	if outcome != OutcomeIgnored {
		slog.Debug("Interaction dispatched", "name", name, "outcome", outcome.String())
	}
}

// HandleFunc adapts the engine to a discordgo InteractionCreate handler.
func (e *Engine) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		e.Handle(context.Background(), s, i)
	}
}
