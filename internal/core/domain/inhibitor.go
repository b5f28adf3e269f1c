package domain

import "context"

// InhibitorContext carries what an inhibitor gets to look at besides the
// interaction itself.
type InhibitorContext struct {
	Command Command
}

// InhibitorFunc returns false to veto the command.
type InhibitorFunc func(ctx context.Context, i *Interaction, ic InhibitorContext) (bool, error)

// Inhibitor is a named guard evaluated before a command runs.
type Inhibitor struct {
	Name string
	Run  InhibitorFunc
}

// InhibitorRef points at an inhibitor either by registry name or directly.
type InhibitorRef struct {
	name      string
	inhibitor *Inhibitor
}

func InhibitByName(name string) InhibitorRef {
	return InhibitorRef{name: name}
}

func Inhibit(inhibitor *Inhibitor) InhibitorRef {
	return InhibitorRef{inhibitor: inhibitor}
}

// Resolve returns the referenced inhibitor, looking names up with lookup.
func (r InhibitorRef) Resolve(lookup func(name string) (*Inhibitor, bool)) (*Inhibitor, bool) {
	if r.inhibitor != nil {
		return r.inhibitor, r.inhibitor.Run != nil
	}
	if r.name == "" || lookup == nil {
		return nil, false
	}
	inhibitor, ok := lookup(r.name)
	if !ok || inhibitor == nil || inhibitor.Run == nil {
		return nil, false
	}
	return inhibitor, true
}

func (r InhibitorRef) String() string {
	if r.inhibitor != nil {
		return r.inhibitor.Name
	}
	return r.name
}
