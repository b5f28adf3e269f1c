package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgRoleAdded(t *testing.T) {
	expected := "Gave <@&r1> to <@u1>."
	assert.Equal(t, expected, MsgRoleAdded("u1", "r1"))
}

func TestMsgRoleMembers(t *testing.T) {
	tests := []struct {
		name     string
		userIDs  []string
		expected string
	}{
		{
			name:     "no members",
			userIDs:  nil,
			expected: "Nobody has <@&r1>.",
		},
		{
			name:     "single member",
			userIDs:  []string{"u1"},
			expected: "Members with <@&r1>:\n- <@u1>\n",
		},
		{
			name:     "multiple members",
			userIDs:  []string{"u1", "u2"},
			expected: "Members with <@&r1>:\n- <@u1>\n- <@u2>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MsgRoleMembers("r1", tt.userIDs))
		})
	}
}

func TestMsgAvatar(t *testing.T) {
	expected := "Avatar of **alice**: https://cdn/a.png"
	assert.Equal(t, expected, MsgAvatar("alice", "https://cdn/a.png"))
}

func TestMsgQuote(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"single line", "hello", "> hello\n- <@u1>"},
		{"multi line", "a\nb", "> a\n> b\n- <@u1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MsgQuote(tt.content, "u1"))
		})
	}
}
