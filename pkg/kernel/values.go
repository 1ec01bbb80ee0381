package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }

// IsValid does a minimal structural check; full validation lives at the edge.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && strings.Contains(s[at:], ".")
}

// Role is the coarse authorization level of a user.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
