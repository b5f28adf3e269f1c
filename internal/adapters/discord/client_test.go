package discord

import (
	"context"
	"errors"
	"testing"

	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSession struct {
	applicationCommandsFunc func(appID, guildID string) ([]*discordgo.ApplicationCommand, error)
	bulkOverwriteFunc       func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error)
	openFunc                func() error

	handlers     []interface{}
	onceHandlers []interface{}
	opened       int
	closed       int
}

func (m *mockSession) ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	if m.applicationCommandsFunc != nil {
		return m.applicationCommandsFunc(appID, guildID)
	}
	return nil, nil
}

func (m *mockSession) ApplicationCommandBulkOverwrite(appID string, guildID string, cmds []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	if m.bulkOverwriteFunc != nil {
		return m.bulkOverwriteFunc(appID, guildID, cmds)
	}
	return cmds, nil
}

func (m *mockSession) AddHandler(handler interface{}) func() {
	m.handlers = append(m.handlers, handler)
	return func() {}
}

func (m *mockSession) AddHandlerOnce(handler interface{}) func() {
	m.onceHandlers = append(m.onceHandlers, handler)
	return func() {}
}

func (m *mockSession) Open() error {
	m.opened++
	if m.openFunc != nil {
		return m.openFunc()
	}
	return nil
}

func (m *mockSession) Close() error {
	m.closed++
	return nil
}

func (m *mockSession) readyHandler(t *testing.T) func(*discordgo.Session, *discordgo.Ready) {
	t.Helper()
	for _, h := range m.onceHandlers {
		if fn, ok := h.(func(*discordgo.Session, *discordgo.Ready)); ok {
			return fn
		}
	}
	require.FailNow(t, "no ready handler subscribed")
	return nil
}

func pingCommand() *domain.ChatInputCommand {
	return &domain.ChatInputCommand{
		Base:        domain.Base{Name: "ping"},
		Description: "Ping",
		Run:         func(context.Context, *domain.Interaction) error { return nil },
	}
}

func TestClient_Login(t *testing.T) {
	session := &mockSession{}
	var registered []string

	client := NewClient(session, Options{
		ApplicationID: "app",
		GuildID:       "g1",
		Hooks: &domain.Hooks{
			CommandRegister:   func(cmd domain.Command) { registered = append(registered, "command:"+cmd.Info().Name) },
			InhibitorRegister: func(i *domain.Inhibitor) { registered = append(registered, "inhibitor:"+i.Name) },
			EventRegister:     func(e domain.Event) { registered = append(registered, "event:"+e.Name) },
		},
	}).
		Inhibitors(&domain.Inhibitor{Name: "guild-only", Run: func(context.Context, *domain.Interaction, domain.InhibitorContext) (bool, error) {
			return true, nil
		}}).
		Commands(pingCommand(), &domain.UserCommand{Base: domain.Base{Name: "Avatar"}}).
		Events(
			domain.Event{Name: "ready", Once: true, Handler: func(*discordgo.Session, *discordgo.Ready) {}},
			domain.Event{Name: "guild-create", Handler: func(*discordgo.Session, *discordgo.GuildCreate) {}},
		)

	require.NoError(t, client.Login(context.Background()))

	assert.Equal(t, []string{"inhibitor:guild-only", "command:ping", "command:Avatar", "event:ready", "event:guild-create"}, registered)
	assert.True(t, client.Registry().Sealed(), "registry should be sealed after login")
	_, ok := client.Registry().Command("ping")
	assert.True(t, ok, "ping should be registered")
	assert.Len(t, session.handlers, 2, "dispatch and guild-create handlers")
	assert.Len(t, session.onceHandlers, 1, "only the ready event is a once handler")
	assert.Equal(t, 1, session.opened)
}

func TestClient_LoginTwice(t *testing.T) {
	session := &mockSession{}
	client := NewClient(session, Options{GuildID: "g1"}).Commands(pingCommand())

	require.NoError(t, client.Login(context.Background()))

	err := client.Login(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, 1, session.opened, "session should not be reopened")
}

func TestClient_LoginErrors(t *testing.T) {
	openErr := errors.New("gateway unreachable")

	tests := []struct {
		name    string
		session *mockSession
		cmds    []domain.Command
		events  []domain.Event
		want    error
		opens   int
	}{
		{
			name:    "invalid command",
			session: &mockSession{},
			cmds:    []domain.Command{&domain.ChatInputCommand{Base: domain.Base{Name: "Bad Name"}}},
			want:    domain.ErrInvalidCommand,
		},
		{
			name:    "nil command pointer",
			session: &mockSession{},
			cmds:    []domain.Command{(*domain.ChatInputCommand)(nil)},
			want:    domain.ErrInvalidCommand,
		},
		{
			name:    "duplicate command",
			session: &mockSession{},
			cmds:    []domain.Command{pingCommand(), pingCommand()},
			want:    domain.ErrDuplicateName,
		},
		{
			name:    "event without handler",
			session: &mockSession{},
			events:  []domain.Event{{Name: "ready"}},
		},
		{
			name:    "open failure",
			session: &mockSession{openFunc: func() error { return openErr }},
			want:    openErr,
			opens:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.session, Options{GuildID: "g1"}).Commands(tt.cmds...).Events(tt.events...)

			err := client.Login(context.Background())
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Equal(t, tt.opens, tt.session.opened)
		})
	}
}

func TestClient_DeployOnChange(t *testing.T) {
	var fetchedApp, fetchedGuild string
	var pushed []*discordgo.ApplicationCommand

	session := &mockSession{
		applicationCommandsFunc: func(appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
			fetchedApp, fetchedGuild = appID, guildID
			return nil, nil
		},
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			pushed = cmds
			return cmds, nil
		},
	}

	client := NewClient(session, Options{GuildID: "g1", DeployOnChange: true}).Commands(pingCommand())
	require.NoError(t, client.Login(context.Background()))

	client.onReady(context.Background(), &discordgo.Ready{User: &discordgo.User{ID: "bot-user"}})

	assert.Equal(t, "bot-user", fetchedApp)
	assert.Equal(t, "g1", fetchedGuild)
	require.Len(t, pushed, 1)
	assert.Equal(t, "ping", pushed[0].Name)

	session.readyHandler(t)
}

func TestClient_DeployOnChangeDisabled(t *testing.T) {
	session := &mockSession{}
	client := NewClient(session, Options{GuildID: "g1"}).Commands(pingCommand())

	require.NoError(t, client.Login(context.Background()))
	assert.Empty(t, session.onceHandlers, "no ready trigger expected")
}

func TestClient_SyncBeforeLogin(t *testing.T) {
	puts := 0
	session := &mockSession{
		applicationCommandsFunc: func(string, string) ([]*discordgo.ApplicationCommand, error) {
			return []*discordgo.ApplicationCommand{{Name: "ping", Description: "Ping"}}, nil
		},
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			puts++
			return cmds, nil
		},
	}
	client := NewClient(session, Options{ApplicationID: "app", GuildID: "g1"}).Commands(pingCommand())

	_, err := client.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = client.Deploy(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Zero(t, puts, "remote commands must not be touched before login")
}

func TestClient_SyncAfterFailedLogin(t *testing.T) {
	puts := 0
	session := &mockSession{
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			puts++
			return cmds, nil
		},
	}
	client := NewClient(session, Options{ApplicationID: "app", GuildID: "g1"}).
		Commands(pingCommand(), &domain.ChatInputCommand{Base: domain.Base{Name: "Bad Name"}})

	require.Error(t, client.Login(context.Background()))

	_, err := client.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = client.Deploy(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Zero(t, puts, "a partial command set must not be pushed")
}

func TestClient_SyncWithoutApplicationID(t *testing.T) {
	client := NewClient(&mockSession{}, Options{GuildID: "g1"}).Commands(pingCommand())
	require.NoError(t, client.Login(context.Background()))

	_, err := client.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNoApplicationID)
	_, err = client.Deploy(context.Background())
	assert.ErrorIs(t, err, ErrNoApplicationID)
}

func TestClient_SyncWithoutGuildID(t *testing.T) {
	puts := 0
	session := &mockSession{
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			puts++
			return cmds, nil
		},
	}
	secret := &domain.ChatInputCommand{
		Base:        domain.Base{Name: "secret", DontDeployGlobally: true},
		Description: "Guild only",
	}
	client := NewClient(session, Options{ApplicationID: "app"}).Commands(secret)
	require.NoError(t, client.Login(context.Background()))

	_, err := client.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNoGuildID)
	_, err = client.Deploy(context.Background())
	assert.ErrorIs(t, err, ErrNoGuildID)
	assert.Zero(t, puts, "guild commands must not reach the global endpoint")
}

func TestClient_SyncGlobal(t *testing.T) {
	var guildIDs []string
	var pushed []*discordgo.ApplicationCommand

	session := &mockSession{
		applicationCommandsFunc: func(appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
			guildIDs = append(guildIDs, guildID)
			return nil, nil
		},
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			guildIDs = append(guildIDs, guildID)
			pushed = cmds
			return cmds, nil
		},
	}

	guildOnly := &domain.ChatInputCommand{
		Base:        domain.Base{Name: "role", DontDeployGlobally: true},
		Description: "Manage roles",
	}
	client := NewClient(session, Options{ApplicationID: "app", GuildID: "g1", DeployGlobally: true}).
		Commands(pingCommand(), guildOnly)
	require.NoError(t, client.Login(context.Background()))

	result, err := client.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Deployed)
	assert.Equal(t, 1, result.Commands)
	assert.Equal(t, []string{"", ""}, guildIDs, "global sync should not target a guild")
	require.Len(t, pushed, 1)
	assert.Equal(t, "ping", pushed[0].Name)
}

func TestClient_GlobalWithoutGuildID(t *testing.T) {
	client := NewClient(&mockSession{}, Options{ApplicationID: "app", DeployGlobally: true}).Commands(pingCommand())
	require.NoError(t, client.Login(context.Background()))

	result, err := client.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Deployed)
}

func TestClient_Deploy(t *testing.T) {
	pushes := 0
	session := &mockSession{
		applicationCommandsFunc: func(string, string) ([]*discordgo.ApplicationCommand, error) {
			assert.Fail(t, "Deploy should not fetch remote commands")
			return nil, nil
		},
		bulkOverwriteFunc: func(appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
			pushes++
			return cmds, nil
		},
	}

	client := NewClient(session, Options{ApplicationID: "app", GuildID: "g1"}).Commands(pingCommand())
	require.NoError(t, client.Login(context.Background()))

	for range 2 {
		_, err := client.Deploy(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, pushes)
}

func TestClient_Close(t *testing.T) {
	session := &mockSession{}
	client := NewClient(session, Options{})

	require.NoError(t, client.Close())
	assert.Equal(t, 1, session.closed)
}
