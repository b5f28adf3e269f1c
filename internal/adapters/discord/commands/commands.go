package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"slashkit/internal/adapters/discord/formatting"
	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	maxChoices     = 25
	membersPerPage = 1000
)

// echoSuggestions feeds the echo autocomplete.
var echoSuggestions = []string{
	"Hello there",
	"Good morning",
	"Good night",
	"See you later",
	"Welcome to the server",
	"Thanks for the help",
}

type BotHandler struct {
	Roles RoleSession
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	if ready == nil || ready.User == nil {
		slog.Info("Bot is online!")
		return
	}
	slog.Info("Bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) Ping(ctx context.Context, i *domain.Interaction) error {
	return i.Respond(formatting.MsgPong, false)
}

func (h *BotHandler) Echo(ctx context.Context, i *domain.Interaction) error {
	text := getStringOption(i.Options(), "text")
	if text == "" {
		return i.Respond(formatting.MsgTextRequired, true)
	}
	return i.Respond(text, false)
}

func (h *BotHandler) EchoAutocomplete(ctx context.Context, i *domain.Interaction) error {
	query := getFocusedOption(i.Options())
	return i.RespondAutocomplete(buildChoices(echoSuggestions, query))
}

func (h *BotHandler) RoleAdd(ctx context.Context, i *domain.Interaction) error {
	opts := i.Options()
	userID := getIDOption(opts, "member")
	roleID := getIDOption(opts, "role")
	if userID == "" || roleID == "" {
		return i.Respond(formatting.MsgRoleArgsMissing, true)
	}

	if err := h.Roles.GuildMemberRoleAdd(i.GuildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		slog.Error("Failed to add role", "guild_id", i.GuildID, "user_id", userID, "role_id", roleID, "error", err)
		if respondErr := i.Respond(formatting.MsgRoleError, true); respondErr != nil {
			return respondErr
		}
		return fmt.Errorf("add role: %w", err)
	}

	return i.Respond(formatting.MsgRoleAdded(userID, roleID), false)
}

func (h *BotHandler) RoleMemberList(ctx context.Context, i *domain.Interaction) error {
	roleID := getIDOption(i.Options(), "role")
	if roleID == "" {
		return i.Respond(formatting.MsgRoleArgsMissing, true)
	}

	members, err := h.Roles.GuildMembers(i.GuildID, "", membersPerPage, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error("Failed to list guild members", "guild_id", i.GuildID, "error", err)
		if respondErr := i.Respond(formatting.MsgMembersError, true); respondErr != nil {
			return respondErr
		}
		return fmt.Errorf("list members: %w", err)
	}

	return i.Respond(formatting.MsgRoleMembers(roleID, membersWithRole(members, roleID)), true)
}

func (h *BotHandler) Avatar(ctx context.Context, i *domain.Interaction, target *discordgo.User) error {
	if target == nil {
		return i.Respond(formatting.MsgTargetMissing, true)
	}
	return i.Respond(formatting.MsgAvatar(target.Username, target.AvatarURL("1024")), true)
}

func (h *BotHandler) Quote(ctx context.Context, i *domain.Interaction, target *discordgo.Message) error {
	if target == nil || target.Author == nil {
		return i.Respond(formatting.MsgTargetMissing, true)
	}
	if strings.TrimSpace(target.Content) == "" {
		return i.Respond(formatting.MsgEmptyMessage, true)
	}
	return i.Respond(formatting.MsgQuote(target.Content, target.Author.ID), false)
}

func membersWithRole(members []*discordgo.Member, roleID string) []string {
	var ids []string
	for _, m := range members {
		if m == nil || m.User == nil {
			continue
		}
		for _, r := range m.Roles {
			if r == roleID {
				ids = append(ids, m.User.ID)
				break
			}
		}
	}
	return ids
}

func buildChoices(values []string, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), strings.ToLower(query)) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  v,
				Value: v,
			})
		}
		if len(choices) >= maxChoices {
			break
		}
	}
	return choices
}
