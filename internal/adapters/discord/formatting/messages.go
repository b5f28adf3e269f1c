package formatting

import (
	"fmt"
	"strings"
)

const (
	MsgAdminRequired   = "You need Administrator permissions to use this command."
	MsgGuildOnly       = "This command can only be used inside a server."
	MsgPong            = "Pong!"
	MsgTextRequired    = "Text is required."
	MsgRoleArgsMissing = "Both a member and a role are required."
	MsgRoleError       = "Failed to update the member roles."
	MsgMembersError    = "Failed to retrieve the server members."
	MsgTargetMissing   = "Could not resolve the target of this command."
	MsgEmptyMessage    = "That message has no text to quote."
)

func MsgRoleAdded(userID, roleID string) string {
	return fmt.Sprintf("Gave <@&%s> to <@%s>.", roleID, userID)
}

func MsgRoleMembers(roleID string, userIDs []string) string {
	if len(userIDs) == 0 {
		return fmt.Sprintf("Nobody has <@&%s>.", roleID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Members with <@&%s>:\n", roleID)
	for _, id := range userIDs {
		b.WriteString("- <@" + id + ">\n")
	}
	return b.String()
}

func MsgAvatar(username, url string) string {
	return fmt.Sprintf("Avatar of **%s**: %s", username, url)
}

func MsgQuote(content, authorID string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return fmt.Sprintf("%s\n- <@%s>", strings.Join(lines, "\n"), authorID)
}
