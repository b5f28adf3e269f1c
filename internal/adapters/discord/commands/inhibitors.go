package commands

import (
	"context"

	"slashkit/internal/adapters/discord/formatting"
	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// GuildOnly vetoes commands invoked outside a server.
func GuildOnly(ctx context.Context, i *domain.Interaction, ic domain.InhibitorContext) (bool, error) {
	if i.GuildID != "" && i.Member != nil {
		return true, nil
	}
	return false, i.Respond(formatting.MsgGuildOnly, true)
}

// AdminOnly vetoes commands from members without the Administrator permission.
func AdminOnly(ctx context.Context, i *domain.Interaction, ic domain.InhibitorContext) (bool, error) {
	if i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true, nil
	}
	return false, i.Respond(formatting.MsgAdminRequired, true)
}
