package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommands_Resolve(t *testing.T) {
	var called string
	leaf := func(name string) SubcommandFunc {
		return func(context.Context, *Interaction) error {
			called = name
			return nil
		}
	}

	tree := Subcommands{
		"add": leaf("add"),
		"member": SubcommandGroup{
			"list": leaf("member list"),
		},
	}

	tests := []struct {
		name       string
		group      string
		subcommand string
		wantCall   string
		wantErr    error
	}{
		{"leaf", "", "add", "add", nil},
		{"group leaf", "member", "list", "member list", nil},
		{"missing leaf", "", "remove", "", nil},
		{"missing group", "admin", "list", "", nil},
		{"missing leaf in group", "member", "kick", "", nil},
		{"no names", "", "", "", nil},
		{"leaf addressed as group", "add", "list", "", ErrStructuralMismatch},
		{"group addressed as leaf", "", "member", "", ErrStructuralMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = ""
			fn, err := tree.Resolve(tt.group, tt.subcommand)
			require.ErrorIs(t, err, tt.wantErr)
			if fn != nil {
				require.NoError(t, fn(context.Background(), nil))
			}
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestSubcommands_ResolveNilTree(t *testing.T) {
	var tree Subcommands
	fn, err := tree.Resolve("member", "list")
	assert.Nil(t, fn)
	assert.NoError(t, err)
}
