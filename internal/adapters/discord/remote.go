package discord

import (
	"context"
	"time"

	"slashkit/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// CommandSession defines the Discord session operations needed for command management
type CommandSession interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// RemoteCommands is the command set of an application, global when guildID
// is empty and per guild otherwise.
type RemoteCommands struct {
	session CommandSession
	appID   string
	guildID string
}

func NewRemoteCommands(session CommandSession, appID, guildID string) *RemoteCommands {
	return &RemoteCommands{
		session: session,
		appID:   appID,
		guildID: guildID,
	}
}

func (r *RemoteCommands) Fetch(ctx context.Context) ([]*discordgo.ApplicationCommand, error) {
	start := time.Now()
	cmds, err := r.session.ApplicationCommands(r.appID, r.guildID, discordgo.WithContext(ctx))
	observe("fetch", start, err)
	return cmds, err
}

func (r *RemoteCommands) Put(ctx context.Context, commands []*discordgo.ApplicationCommand) error {
	start := time.Now()
	_, err := r.session.ApplicationCommandBulkOverwrite(r.appID, r.guildID, commands, discordgo.WithContext(ctx))
	observe("put", start, err)
	return err
}

func (r *RemoteCommands) Scope() string {
	if r.guildID == "" {
		return "global"
	}
	return "guild:" + r.guildID
}

func observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.RemoteRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.RemoteRequests.WithLabelValues(operation, status).Inc()
}
