package domain

import "github.com/bwmarrin/discordgo"

// Responder is the part of a discord session command handlers use to answer
// an interaction.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Interaction is an incoming interaction paired with the session that
// delivered it.
type Interaction struct {
	*discordgo.InteractionCreate
	Session Responder
}

func NewInteraction(s Responder, i *discordgo.InteractionCreate) *Interaction {
	return &Interaction{InteractionCreate: i, Session: s}
}

func (i *Interaction) valid() bool {
	return i != nil && i.InteractionCreate != nil && i.InteractionCreate.Interaction != nil
}

// IsCommand reports whether the interaction is an application command
// invocation (chat input or context menu).
func (i *Interaction) IsCommand() bool {
	return i.valid() && i.Type == discordgo.InteractionApplicationCommand
}

func (i *Interaction) IsAutocomplete() bool {
	return i.valid() && i.Type == discordgo.InteractionApplicationCommandAutocomplete
}

// CommandData returns the application command payload. ok is false for any
// other interaction type, where discordgo would panic.
func (i *Interaction) CommandData() (data discordgo.ApplicationCommandInteractionData, ok bool) {
	if !i.IsCommand() && !i.IsAutocomplete() {
		return data, false
	}
	if _, ok := i.Data.(discordgo.ApplicationCommandInteractionData); !ok {
		return data, false
	}
	return i.ApplicationCommandData(), true
}

func (i *Interaction) CommandName() string {
	data, ok := i.CommandData()
	if !ok {
		return ""
	}
	return data.Name
}

// CommandType returns the invoked command variant. Chat input is assumed when
// the platform left the type unset.
func (i *Interaction) CommandType() discordgo.ApplicationCommandType {
	data, ok := i.CommandData()
	if !ok || data.CommandType == 0 {
		return discordgo.ChatApplicationCommand
	}
	return data.CommandType
}

// SubcommandPath returns the subcommand group and subcommand named by the
// interaction. Either may be empty.
func (i *Interaction) SubcommandPath() (group, subcommand string) {
	data, ok := i.CommandData()
	if !ok || len(data.Options) == 0 || data.Options[0] == nil {
		return "", ""
	}

	first := data.Options[0]
	switch first.Type {
	case discordgo.ApplicationCommandOptionSubCommandGroup:
		group = first.Name
		if len(first.Options) > 0 && first.Options[0] != nil &&
			first.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
			subcommand = first.Options[0].Name
		}
	case discordgo.ApplicationCommandOptionSubCommand:
		subcommand = first.Name
	}
	return group, subcommand
}

// Options returns the leaf options of the invocation, skipping any
// subcommand group and subcommand wrappers.
func (i *Interaction) Options() []*discordgo.ApplicationCommandInteractionDataOption {
	data, ok := i.CommandData()
	if !ok {
		return nil
	}

	opts := data.Options
	for len(opts) > 0 && opts[0] != nil &&
		(opts[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup ||
			opts[0].Type == discordgo.ApplicationCommandOptionSubCommand) {
		opts = opts[0].Options
	}
	return opts
}

// TargetUser resolves the user a user context menu command was invoked on.
func (i *Interaction) TargetUser() *discordgo.User {
	data, ok := i.CommandData()
	if !ok || data.Resolved == nil || data.TargetID == "" {
		return nil
	}
	return data.Resolved.Users[data.TargetID]
}

// TargetMessage resolves the message a message context menu command was
// invoked on.
func (i *Interaction) TargetMessage() *discordgo.Message {
	data, ok := i.CommandData()
	if !ok || data.Resolved == nil || data.TargetID == "" {
		return nil
	}
	return data.Resolved.Messages[data.TargetID]
}

func (i *Interaction) Respond(content string, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return i.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   flags,
		},
	})
}

func (i *Interaction) RespondAutocomplete(choices []*discordgo.ApplicationCommandOptionChoice) error {
	return i.Session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}
