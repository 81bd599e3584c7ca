package enums

import "fmt"

// ChatRole tags who authored a transcript message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

var validChatRoles = []ChatRole{
	ChatRoleUser,
	ChatRoleAssistant,
}

// String implements fmt.Stringer.
func (c ChatRole) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ChatRole.
func (c ChatRole) IsValid() bool {
	for _, candidate := range validChatRoles {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseChatRole converts raw input into a ChatRole.
func ParseChatRole(value string) (ChatRole, error) {
	for _, candidate := range validChatRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid chat role %q", value)
}
