package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

// ErrInvalidCommand wraps every command definition error.
var ErrInvalidCommand = errors.New("invalid command")

const (
	maxNameLength        = 32
	maxDescriptionLength = 100
)

func (c *ChatInputCommand) Validate() error {
	var errs []error

	if err := validateName(c.Name, true); err != nil {
		errs = append(errs, err)
	}
	if err := validateDescription(c.Description); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, validateLocales("name", c.NameLocalizations)...)
	errs = append(errs, validateLocales("description", c.DescriptionLocalizations)...)
	errs = append(errs, validateSubcommands(c.Subcommands, c.Options)...)

	return joinCommandErrors(c.Name, errs)
}

func (c *UserCommand) Validate() error {
	return validateContextMenu(&c.Base)
}

func (c *MessageCommand) Validate() error {
	return validateContextMenu(&c.Base)
}

func validateContextMenu(b *Base) error {
	var errs []error
	if err := validateName(b.Name, false); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, validateLocales("name", b.NameLocalizations)...)
	return joinCommandErrors(b.Name, errs)
}

func joinCommandErrors(name string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidCommand, name, errors.Join(errs...))
}

// validateName applies the platform naming rules. Chat input names must be
// lower case without spaces, context menu names may contain both.
func validateName(name string, chatInput bool) error {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return errors.New("name is required")
	}
	if n > maxNameLength {
		return fmt.Errorf("name must be at most %d characters, got %d", maxNameLength, n)
	}
	if chatInput {
		if strings.ContainsAny(name, " \t\n") {
			return fmt.Errorf("chat input name %q must not contain whitespace", name)
		}
		if strings.ToLower(name) != name {
			return fmt.Errorf("chat input name %q must be lower case", name)
		}
	}
	return nil
}

func validateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	if n == 0 {
		return errors.New("description is required")
	}
	if n > maxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters, got %d", maxDescriptionLength, n)
	}
	return nil
}

func validateLocales(field string, m map[discordgo.Locale]string) []error {
	var errs []error
	for locale := range m {
		if _, err := language.Parse(string(locale)); err != nil {
			errs = append(errs, fmt.Errorf("%s localization has invalid locale %q: %w", field, locale, err))
		}
	}
	return errs
}

// validateSubcommands rejects nil handlers and entries whose shape
// contradicts the declared subcommand options. Entries without a matching
// option are left to dispatch time.
func validateSubcommands(tree Subcommands, options []*discordgo.ApplicationCommandOption) []error {
	var errs []error

	for name, entry := range tree {
		switch e := entry.(type) {
		case nil:
			errs = append(errs, fmt.Errorf("subcommand %q has no handler", name))
		case SubcommandFunc:
			if e == nil {
				errs = append(errs, fmt.Errorf("subcommand %q has no handler", name))
			}
		case SubcommandGroup:
			for sub, fn := range e {
				if fn == nil {
					errs = append(errs, fmt.Errorf("subcommand %q in group %q has no handler", sub, name))
				}
			}
		}
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		entry, ok := tree[opt.Name]
		if !ok || entry == nil {
			continue
		}
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			if _, isGroup := entry.(SubcommandGroup); !isGroup {
				errs = append(errs, fmt.Errorf("%w: option %q is a subcommand group but its handler is %s", ErrStructuralMismatch, opt.Name, entryKind(entry)))
			}
		case discordgo.ApplicationCommandOptionSubCommand:
			if _, isLeaf := entry.(SubcommandFunc); !isLeaf {
				errs = append(errs, fmt.Errorf("%w: option %q is a subcommand but its handler is %s", ErrStructuralMismatch, opt.Name, entryKind(entry)))
			}
		}
	}

	return errs
}
