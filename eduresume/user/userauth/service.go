package userauth

import (
	"context"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/user"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/google/uuid"
)

// AuthService implements signup, login and the password-reset flow.
type AuthService struct {
	userRepo    user.Repository
	tokens      *TokenService
	passwords   PasswordService
	resetTokens ResetTokenStore
}

func NewAuthService(
	userRepo user.Repository,
	tokens *TokenService,
	passwords PasswordService,
	resetTokens ResetTokenStore,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		passwords:   passwords,
		resetTokens: resetTokens,
	}
}

// Signup registers a user and returns a fresh session token.
func (s *AuthService) Signup(ctx context.Context, req user.SignupRequest) (*user.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, user.ErrInvalidInput()
	}

	email := kernel.Email(req.Email)
	if !email.IsValid() {
		return nil, user.ErrInvalidInput().WithDetail("email", req.Email)
	}

	role := req.Role
	if role == "" {
		role = kernel.RoleStudent
	}
	if !role.IsValid() {
		return nil, user.ErrInvalidInput().WithDetail("role", role)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing user", errx.TypeInternal)
	}
	if exists {
		return nil, user.ErrUserAlreadyExists().WithDetail("email", req.Email)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(newUser)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    newUser.Profile(),
	}, nil
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, user.ErrInvalidInput()
	}

	u, err := s.userRepo.GetByEmail(ctx, kernel.Email(req.Email))
	if err != nil {
		return nil, user.ErrInvalidCredentials()
	}

	if !s.passwords.Compare(u.PasswordHash, req.Password) {
		return nil, user.ErrInvalidCredentials()
	}

	token, err := s.tokens.GenerateAccessToken(u)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    u.Profile(),
	}, nil
}

// ForgotPassword issues a short-lived reset token and records it as the only
// valid one for the user.
func (s *AuthService) ForgotPassword(ctx context.Context, email kernel.Email) (string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", user.ErrUserNotFound().WithDetail("email", email.String())
	}

	token, err := s.tokens.GenerateResetToken(u)
	if err != nil {
		return "", err
	}

	if err := s.resetTokens.Put(ctx, u.ID, token, ResetTokenTTL); err != nil {
		return "", errx.Wrap(err, "failed to store reset token", errx.TypeInternal)
	}

	return token, nil
}

// VerifyResetToken checks a reset token against the recorded one.
func (s *AuthService) VerifyResetToken(ctx context.Context, token string) (kernel.UserID, error) {
	authCtx, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", user.ErrInvalidResetToken()
	}

	stored, err := s.resetTokens.Get(ctx, authCtx.UserID)
	if err != nil {
		return "", errx.Wrap(err, "failed to load reset token", errx.TypeInternal)
	}
	if stored == "" || stored != token {
		return "", user.ErrInvalidResetToken()
	}

	return authCtx.UserID, nil
}

// ResetPassword sets a new password for the token's user and invalidates the
// token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return user.ErrInvalidInput().WithDetail("newPassword", "required")
	}

	userID, err := s.VerifyResetToken(ctx, token)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.ErrUserNotFound()
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return err
	}

	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, u.ID, u); err != nil {
		return err
	}

	return s.resetTokens.Delete(ctx, u.ID)
}

// GetProfile returns the public projection of a user.
func (s *AuthService) GetProfile(ctx context.Context, id kernel.UserID) (*user.Profile, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
	}
	profile := u.Profile()
	return &profile, nil
}
