package commands

import "github.com/bwmarrin/discordgo"

func getStringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// getIDOption returns the snowflake carried by a user, role, channel or
// mentionable option.
func getIDOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name != name {
			continue
		}
		if id, ok := opt.Value.(string); ok {
			return id
		}
	}
	return ""
}

func getFocusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range opts {
		if opt.Focused {
			if s, ok := opt.Value.(string); ok {
				return s
			}
			return ""
		}
	}
	return ""
}
