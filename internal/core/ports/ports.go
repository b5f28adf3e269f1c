package ports

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// RemoteCommandStore is one remote command set, global or per guild. Both
// operations act on the whole set.
type RemoteCommandStore interface {
	Fetch(ctx context.Context) ([]*discordgo.ApplicationCommand, error)
	// Put replaces the remote set with commands.
	Put(ctx context.Context, commands []*discordgo.ApplicationCommand) error
	// Scope names the set for logs and metrics.
	Scope() string
}
