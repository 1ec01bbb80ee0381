package user

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// User is an authenticated actor: a student building resumes, a professor
// publishing templates and reviewing, or an admin.
type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        kernel.Email  `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         kernel.Role   `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// IsProfessor reports whether the user may manage templates and feedback.
func (u *User) IsProfessor() bool {
	return u.Role == kernel.RoleProfessor || u.Role == kernel.RoleAdmin
}

// IsStudent reports whether the user owns resumes.
func (u *User) IsStudent() bool {
	return u.Role == kernel.RoleStudent
}
