package user

import "github.com/Abraxas-365/eduresume/pkg/kernel"

type SignupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     kernel.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// Profile is the public projection of a user, never carrying the hash.
type Profile struct {
	ID    kernel.UserID `json:"id"`
	Name  string        `json:"name"`
	Email kernel.Email  `json:"email"`
	Role  kernel.Role   `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}
