package domain

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type (
	ChatInputFunc    func(ctx context.Context, i *Interaction) error
	AutocompleteFunc func(ctx context.Context, i *Interaction) error
	UserFunc         func(ctx context.Context, i *Interaction, target *discordgo.User) error
	MessageFunc      func(ctx context.Context, i *Interaction, target *discordgo.Message) error
)

// Command is one of *ChatInputCommand, *UserCommand or *MessageCommand.
type Command interface {
	Info() *Base
	Kind() discordgo.ApplicationCommandType
	// ApplicationCommand returns the descriptor deployed to the platform.
	ApplicationCommand() *discordgo.ApplicationCommand
	Validate() error

	isCommand()
}

// Base holds the attributes shared by every command variant.
type Base struct {
	Name                     string
	NameLocalizations        map[discordgo.Locale]string
	DefaultMemberPermissions *int64
	DMPermission             *bool
	// DontDeployGlobally keeps the command out of global deployments.
	DontDeployGlobally bool
	Inhibitors         []InhibitorRef
}

func (b *Base) Info() *Base { return b }

func (b *Base) applicationCommand(kind discordgo.ApplicationCommandType) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Type:                     kind,
		Name:                     b.Name,
		NameLocalizations:        localizations(b.NameLocalizations),
		DefaultMemberPermissions: b.DefaultMemberPermissions,
		DMPermission:             b.DMPermission,
	}
}

// ChatInputCommand is a slash command.
type ChatInputCommand struct {
	Base
	Description              string
	DescriptionLocalizations map[discordgo.Locale]string
	Options                  []*discordgo.ApplicationCommandOption
	Subcommands              Subcommands

	Autocomplete AutocompleteFunc
	Run          ChatInputFunc
}

func (c *ChatInputCommand) isCommand() {}

func (c *ChatInputCommand) Kind() discordgo.ApplicationCommandType {
	return discordgo.ChatApplicationCommand
}

func (c *ChatInputCommand) ApplicationCommand() *discordgo.ApplicationCommand {
	cmd := c.applicationCommand(c.Kind())
	cmd.Description = c.Description
	cmd.DescriptionLocalizations = localizations(c.DescriptionLocalizations)
	cmd.Options = c.Options
	return cmd
}

// UserCommand is invoked from the context menu of a user.
type UserCommand struct {
	Base
	Run UserFunc
}

func (c *UserCommand) isCommand() {}

func (c *UserCommand) Kind() discordgo.ApplicationCommandType {
	return discordgo.UserApplicationCommand
}

func (c *UserCommand) ApplicationCommand() *discordgo.ApplicationCommand {
	return c.applicationCommand(c.Kind())
}

// MessageCommand is invoked from the context menu of a message.
type MessageCommand struct {
	Base
	Run MessageFunc
}

func (c *MessageCommand) isCommand() {}

func (c *MessageCommand) Kind() discordgo.ApplicationCommandType {
	return discordgo.MessageApplicationCommand
}

func (c *MessageCommand) ApplicationCommand() *discordgo.ApplicationCommand {
	return c.applicationCommand(c.Kind())
}

// IsNil reports whether cmd is nil or a nil pointer of one of the variants.
func IsNil(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return true
	case *ChatInputCommand:
		return c == nil
	case *UserCommand:
		return c == nil
	case *MessageCommand:
		return c == nil
	default:
		return false
	}
}

func localizations(m map[discordgo.Locale]string) *map[discordgo.Locale]string {
	if m == nil {
		return nil
	}
	return &m
}
