package main

import (
	"context"
	"log/slog"

	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

func newHooks() *domain.Hooks {
	return &domain.Hooks{
		CommandRun: func(ctx context.Context, cmd domain.Command, i *domain.Interaction) {
			slog.Debug("Command invoked", "name", cmd.Info().Name, "guild_id", i.GuildID, "user_id", invokerID(i))
		},
		AutocompleteRun: func(ctx context.Context, cmd *domain.ChatInputCommand, i *domain.Interaction) {
			slog.Debug("Autocomplete requested", "name", cmd.Name, "guild_id", i.GuildID)
		},
		InhibitorRun: func(ctx context.Context, allowed bool, inhibitor *domain.Inhibitor, i *domain.Interaction, cmd domain.Command) {
			slog.Debug("Inhibitor evaluated", "inhibitor", inhibitor.Name, "command", cmd.Info().Name, "allowed", allowed)
		},
		CommandsDeployed: func(ctx context.Context, cmds []*discordgo.ApplicationCommand, scope string) {
			slog.Info("Commands deployed", "scope", scope, "count", len(cmds))
		},
	}
}

func invokerID(i *domain.Interaction) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	default:
		return ""
	}
}
