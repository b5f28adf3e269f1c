package domain

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Event subscribes Handler to a gateway event. Handler must be a discordgo
// event handler such as func(*discordgo.Session, *discordgo.Ready).
type Event struct {
	Name    string
	Once    bool
	Handler any
}

// Hooks are framework lifecycle callbacks. Any of them may be nil, and so may
// the *Hooks itself.
type Hooks struct {
	CommandRegister   func(cmd Command)
	InhibitorRegister func(inhibitor *Inhibitor)
	EventRegister     func(event Event)

	CommandRun      func(ctx context.Context, cmd Command, i *Interaction)
	AutocompleteRun func(ctx context.Context, cmd *ChatInputCommand, i *Interaction)
	InhibitorRun    func(ctx context.Context, allowed bool, inhibitor *Inhibitor, i *Interaction, cmd Command)

	CommandsDeployed func(ctx context.Context, commands []*discordgo.ApplicationCommand, scope string)
}

func (h *Hooks) EmitCommandRegister(cmd Command) {
	if h != nil && h.CommandRegister != nil {
		h.CommandRegister(cmd)
	}
}

func (h *Hooks) EmitInhibitorRegister(inhibitor *Inhibitor) {
	if h != nil && h.InhibitorRegister != nil {
		h.InhibitorRegister(inhibitor)
	}
}

func (h *Hooks) EmitEventRegister(event Event) {
	if h != nil && h.EventRegister != nil {
		h.EventRegister(event)
	}
}

func (h *Hooks) EmitCommandRun(ctx context.Context, cmd Command, i *Interaction) {
	if h != nil && h.CommandRun != nil {
		h.CommandRun(ctx, cmd, i)
	}
}

func (h *Hooks) EmitAutocompleteRun(ctx context.Context, cmd *ChatInputCommand, i *Interaction) {
	if h != nil && h.AutocompleteRun != nil {
		h.AutocompleteRun(ctx, cmd, i)
	}
}

func (h *Hooks) EmitInhibitorRun(ctx context.Context, allowed bool, inhibitor *Inhibitor, i *Interaction, cmd Command) {
	if h != nil && h.InhibitorRun != nil {
		h.InhibitorRun(ctx, allowed, inhibitor, i, cmd)
	}
}

func (h *Hooks) EmitCommandsDeployed(ctx context.Context, commands []*discordgo.ApplicationCommand, scope string) {
	if h != nil && h.CommandsDeployed != nil {
		h.CommandsDeployed(ctx, commands, scope)
	}
}
