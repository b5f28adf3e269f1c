package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrStructuralMismatch means a subcommand tree entry has the wrong shape for
// the position an interaction addressed it in. It points at a bug in the
// command definition.
var ErrStructuralMismatch = errors.New("subcommand tree shape mismatch")

type SubcommandFunc func(ctx context.Context, i *Interaction) error

// SubcommandGroup maps subcommand names to handlers. Groups cannot nest.
type SubcommandGroup map[string]SubcommandFunc

// SubcommandEntry is either a SubcommandFunc or a SubcommandGroup.
type SubcommandEntry interface {
	subcommandEntry()
}

func (SubcommandFunc) subcommandEntry()  {}
func (SubcommandGroup) subcommandEntry() {}

// Subcommands maps top level subcommand and group names to their entries.
type Subcommands map[string]SubcommandEntry

// Resolve returns the handler addressed by group and subcommand. A nil
// handler with a nil error means there is nothing to run.
func (t Subcommands) Resolve(group, subcommand string) (SubcommandFunc, error) {
	if t == nil || (group == "" && subcommand == "") {
		return nil, nil
	}

	if group != "" {
		entry, ok := t[group]
		if !ok || entry == nil {
			return nil, nil
		}
		g, ok := entry.(SubcommandGroup)
		if !ok {
			return nil, fmt.Errorf("%w: expected %q to be a subcommand group, found %s", ErrStructuralMismatch, group, entryKind(entry))
		}
		if subcommand == "" {
			return nil, nil
		}
		return g[subcommand], nil
	}

	entry, ok := t[subcommand]
	if !ok || entry == nil {
		return nil, nil
	}
	fn, ok := entry.(SubcommandFunc)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q to be a subcommand, found %s", ErrStructuralMismatch, subcommand, entryKind(entry))
	}
	return fn, nil
}

func entryKind(entry SubcommandEntry) string {
	switch entry.(type) {
	case SubcommandFunc:
		return "a subcommand"
	case SubcommandGroup:
		return "a subcommand group"
	default:
		return fmt.Sprintf("%T", entry)
	}
}
