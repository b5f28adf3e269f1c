package domain

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrDuplicateName = errors.New("name already registered")
	ErrSealed        = errors.New("registry is sealed")
)

// Registry holds commands and inhibitors by name. It is filled once during
// startup and only read after Seal.
type Registry struct {
	mu         sync.RWMutex
	sealed     bool
	commands   map[string]Command
	inhibitors map[string]*Inhibitor
}

func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]Command),
		inhibitors: make(map[string]*Inhibitor),
	}
}

func (r *Registry) RegisterCommand(cmd Command) error {
	if IsNil(cmd) {
		return fmt.Errorf("%w: nil command", ErrInvalidCommand)
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}
	name := cmd.Info().Name
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q: %w", name, ErrDuplicateName)
	}
	r.commands[name] = cmd
	return nil
}

func (r *Registry) RegisterInhibitor(inhibitor *Inhibitor) error {
	if inhibitor == nil || inhibitor.Name == "" || inhibitor.Run == nil {
		return errors.New("inhibitor requires a name and a run function")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}
	if _, exists := r.inhibitors[inhibitor.Name]; exists {
		return fmt.Errorf("inhibitor %q: %w", inhibitor.Name, ErrDuplicateName)
	}
	r.inhibitors[inhibitor.Name] = inhibitor
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

func (r *Registry) Command(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *Registry) Inhibitor(name string) (*Inhibitor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inhibitor, ok := r.inhibitors[name]
	return inhibitor, ok
}

// Commands returns every registered command sorted by name.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Info().Name < cmds[j].Info().Name
	})
	return cmds
}
