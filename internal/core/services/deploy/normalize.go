package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"slashkit/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

var ErrNilCommand = errors.New("nil command")

// Payload is a command in the canonical snake_case wire shape. It is only
// built for comparison and deployment and never stored.
type Payload map[string]any

const (
	keyName                     = "name"
	keyNameLocalizations        = "name_localizations"
	keyType                     = "type"
	keyDescription              = "description"
	keyDescriptionLocalizations = "description_localizations"
	keyDefaultMemberPermissions = "default_member_permissions"
	keyDMPermission             = "dm_permission"
	keyOptions                  = "options"
)

// Name returns the command name of the payload.
func (p Payload) Name() string {
	name, _ := p[keyName].(string)
	return name
}

// Normalize converts a local or remote command descriptor into its canonical
// payload. Absent collections become empty ones so both sides compare alike.
func Normalize(cmd *discordgo.ApplicationCommand) (Payload, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	kind := cmd.Type
	if kind == 0 {
		kind = discordgo.ChatApplicationCommand
	}

	p := Payload{
		keyName:                     cmd.Name,
		keyNameLocalizations:        localizationMap(cmd.NameLocalizations),
		keyType:                     float64(kind),
		keyDescription:              cmd.Description,
		keyDescriptionLocalizations: localizationMap(cmd.DescriptionLocalizations),
	}
	if cmd.DefaultMemberPermissions != nil {
		p[keyDefaultMemberPermissions] = strconv.FormatInt(*cmd.DefaultMemberPermissions, 10)
	}
	if cmd.DMPermission != nil {
		p[keyDMPermission] = *cmd.DMPermission
	}

	options, err := normalizeOptions(cmd.Options)
	if err != nil {
		return nil, fmt.Errorf("normalize options of %q: %w", cmd.Name, err)
	}
	p[keyOptions] = options

	return p, nil
}

// NormalizeCommand normalizes the descriptor of a registered command.
func NormalizeCommand(cmd domain.Command) (Payload, error) {
	if domain.IsNil(cmd) {
		return nil, ErrNilCommand
	}
	return Normalize(cmd.ApplicationCommand())
}

// NormalizeAll normalizes a remote command set, skipping nil entries.
func NormalizeAll(cmds []*discordgo.ApplicationCommand) ([]Payload, error) {
	payloads := make([]Payload, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		p, err := Normalize(cmd)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

// NormalizeCommands normalizes registered commands, skipping nil entries.
func NormalizeCommands(cmds []domain.Command) ([]Payload, error) {
	descriptors := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		if domain.IsNil(cmd) {
			continue
		}
		descriptors = append(descriptors, cmd.ApplicationCommand())
	}
	return NormalizeAll(descriptors)
}

func localizationMap(m *map[discordgo.Locale]string) map[string]any {
	out := make(map[string]any)
	if m == nil {
		return out
	}
	for locale, value := range *m {
		out[string(locale)] = value
	}
	return out
}

// normalizeOptions goes through the JSON encoding of the options so that
// every option field appears exactly as the platform API spells it.
func normalizeOptions(opts []*discordgo.ApplicationCommandOption) ([]any, error) {
	out := make([]any, 0, len(opts))
	if len(opts) == 0 {
		return out, nil
	}

	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	var decoded []any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	for _, o := range decoded {
		if m, ok := o.(map[string]any); ok {
			out = append(out, normalizeOption(m))
		}
	}
	return out, nil
}

func normalizeOption(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			continue
		case []any:
			if len(val) == 0 && k != keyOptions {
				continue
			}
		}
		out[k] = v
	}

	out[keyNameLocalizations] = ensureMap(out[keyNameLocalizations])
	out[keyDescriptionLocalizations] = ensureMap(out[keyDescriptionLocalizations])

	nested, _ := out[keyOptions].([]any)
	options := make([]any, 0, len(nested))
	for _, o := range nested {
		if child, ok := o.(map[string]any); ok {
			options = append(options, normalizeOption(child))
		}
	}
	out[keyOptions] = options

	return out
}

func ensureMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return make(map[string]any)
}

// ApplicationCommand converts the payload back into a descriptor that can be
// pushed to the platform.
func (p Payload) ApplicationCommand() (*discordgo.ApplicationCommand, error) {
	cmd := &discordgo.ApplicationCommand{
		Name: p.Name(),
	}

	if t, ok := p[keyType].(float64); ok {
		cmd.Type = discordgo.ApplicationCommandType(t)
	}
	if d, ok := p[keyDescription].(string); ok {
		cmd.Description = d
	}
	cmd.NameLocalizations = localeMap(p[keyNameLocalizations])
	cmd.DescriptionLocalizations = localeMap(p[keyDescriptionLocalizations])

	if perms, ok := p[keyDefaultMemberPermissions].(string); ok {
		v, err := strconv.ParseInt(perms, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse default member permissions of %q: %w", cmd.Name, err)
		}
		cmd.DefaultMemberPermissions = &v
	}
	if dm, ok := p[keyDMPermission].(bool); ok {
		cmd.DMPermission = &dm
	}

	if options, ok := p[keyOptions].([]any); ok && len(options) > 0 {
		raw, err := json.Marshal(options)
		if err != nil {
			return nil, fmt.Errorf("encode options of %q: %w", cmd.Name, err)
		}
		if err := json.Unmarshal(raw, &cmd.Options); err != nil {
			return nil, fmt.Errorf("decode options of %q: %w", cmd.Name, err)
		}
	}

	return cmd, nil
}

func localeMap(v any) *map[discordgo.Locale]string {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[discordgo.Locale]string, len(m))
	for locale, value := range m {
		if s, ok := value.(string); ok {
			out[discordgo.Locale(locale)] = s
		}
	}
	return &out
}

// ApplicationCommands converts payloads back into descriptors.
func ApplicationCommands(payloads []Payload) ([]*discordgo.ApplicationCommand, error) {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(payloads))
	for _, p := range payloads {
		cmd, err := p.ApplicationCommand()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
