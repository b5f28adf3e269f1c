package commands

import (
	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	InhibitorGuildOnly = "guild-only"
	InhibitorAdminOnly = "admin-only"
)

var (
	adminPerms = int64(discordgo.PermissionAdministrator)
	dmDisabled = false
)

// All returns the commands of the example bot.
func All(h *BotHandler) []domain.Command {
	return []domain.Command{
		&domain.ChatInputCommand{
			Base: domain.Base{
				Name: "ping",
				NameLocalizations: map[discordgo.Locale]string{
					discordgo.German: "ping",
				},
			},
			Description: "Check that the bot is responding",
			DescriptionLocalizations: map[discordgo.Locale]string{
				discordgo.German: "Prüfen, ob der Bot antwortet",
			},
			Run: h.Ping,
		},
		&domain.ChatInputCommand{
			Base:        domain.Base{Name: "echo"},
			Description: "Repeat a message back",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("text", "Text to repeat", true, true),
			},
			Autocomplete: h.EchoAutocomplete,
			Run:          h.Echo,
		},
		&domain.ChatInputCommand{
			Base: domain.Base{
				Name:                     "role",
				DefaultMemberPermissions: &adminPerms,
				DMPermission:             &dmDisabled,
				DontDeployGlobally:       true,
				Inhibitors: []domain.InhibitorRef{
					domain.InhibitByName(InhibitorGuildOnly),
					domain.InhibitByName(InhibitorAdminOnly),
				},
			},
			Description: "Manage member roles",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Give a role to a member",
					Options: []*discordgo.ApplicationCommandOption{
						userOption("member", "Member receiving the role"),
						roleOption("role", "Role to give"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "member",
					Description: "Inspect role members",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "List the members holding a role",
							Options: []*discordgo.ApplicationCommandOption{
								roleOption("role", "Role to look up"),
							},
						},
					},
				},
			},
			Subcommands: domain.Subcommands{
				"add": domain.SubcommandFunc(h.RoleAdd),
				"member": domain.SubcommandGroup{
					"list": h.RoleMemberList,
				},
			},
		},
		&domain.UserCommand{
			Base: domain.Base{Name: "Avatar"},
			Run:  h.Avatar,
		},
		&domain.MessageCommand{
			Base: domain.Base{Name: "Quote"},
			Run:  h.Quote,
		},
	}
}

// Inhibitors returns the named inhibitors commands refer to.
func Inhibitors() []*domain.Inhibitor {
	return []*domain.Inhibitor{
		{Name: InhibitorGuildOnly, Run: GuildOnly},
		{Name: InhibitorAdminOnly, Run: AdminOnly},
	}
}

func stringOption(name, description string, required, autocomplete bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: autocomplete,
	}
}

func userOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

func roleOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        name,
		Description: description,
		Required:    true,
	}
}
