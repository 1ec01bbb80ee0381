package userauth

import (
	"context"
	"sync"
	"testing"

	"github.com/Abraxas-365/eduresume/eduresume/user"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[kernel.UserID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[kernel.UserID]*user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrUserAlreadyExists()
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *memUserRepo) Update(_ context.Context, id kernel.UserID, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound()
	}
	cp := *u
	r.users[id] = &cp
	return nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errx.IsCode(err, user.CodeUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func newTestAuthService() (*AuthService, *TokenService) {
	tokens := NewTokenService("test-secret", "eduresume-test")
	svc := NewAuthService(newMemUserRepo(), tokens, NewBcryptPasswordService(), NewMemoryResetTokenStore())
	return svc, tokens
}

func TestSignupAndLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, user.SignupRequest{
		Name:     "Ada Student",
		Email:    "ada@university.edu",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, kernel.RoleStudent, resp.User.Role, "default role is student")

	authCtx, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, authCtx.UserID)
	assert.Equal(t, kernel.RoleStudent, authCtx.Role)

	login, err := svc.Login(ctx, user.LoginRequest{Email: "ada@university.edu", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := user.SignupRequest{Name: "Ada", Email: "ada@university.edu", Password: "pass-123"}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, user.CodeUserAlreadyExists))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, user.SignupRequest{Name: "Ada", Email: "ada@university.edu", Password: "pass-123"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, user.LoginRequest{Email: "nobody@university.edu", Password: "pass-123"})
	_, wrongErr := svc.Login(ctx, user.LoginRequest{Email: "ada@university.edu", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errx.IsCode(unknownErr, user.CodeInvalidCredentials))
	assert.True(t, errx.IsCode(wrongErr, user.CodeInvalidCredentials))
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, user.SignupRequest{Name: "Ada", Email: "ada@university.edu", Password: "old-pass-1"})
	require.NoError(t, err)

	token, err := svc.ForgotPassword(ctx, "ada@university.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = svc.VerifyResetToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, token, "new-pass-1"))

	_, err = svc.Login(ctx, user.LoginRequest{Email: "ada@university.edu", Password: "old-pass-1"})
	require.Error(t, err)

	_, err = svc.Login(ctx, user.LoginRequest{Email: "ada@university.edu", Password: "new-pass-1"})
	require.NoError(t, err)

	// Tokens are single use.
	_, err = svc.VerifyResetToken(ctx, token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", "eduresume-test")

	_, err := tokens.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	other := NewTokenService("other-secret", "eduresume-test")
	u := &user.User{ID: "u1", Email: "a@b.c", Role: kernel.RoleStudent}
	forged, err := other.GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(forged)
	assert.Error(t, err, "token signed with a different secret must fail")
}
