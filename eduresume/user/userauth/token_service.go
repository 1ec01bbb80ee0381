package userauth

import (
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/user"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL = 7 * 24 * time.Hour
	ResetTokenTTL  = 15 * time.Minute
)

// Claims are the token claims carried by every bearer token.
type Claims struct {
	Email kernel.Email `json:"email"`
	Role  kernel.Role  `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens for users.
type TokenService struct {
	secret []byte
	issuer string
}

func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer}
}

// GenerateAccessToken issues the long-lived session token.
func (s *TokenService) GenerateAccessToken(u *user.User) (string, error) {
	return s.generate(u, AccessTokenTTL)
}

// GenerateResetToken issues the short-lived password-reset token.
func (s *TokenService) GenerateResetToken(u *user.User) (string, error) {
	return s.generate(u, ResetTokenTTL)
}

func (s *TokenService) generate(u *user.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign token", errx.TypeInternal)
	}
	return signed, nil
}

// AuthContext is the authenticated identity handlers read from the request.
type AuthContext struct {
	UserID kernel.UserID
	Email  kernel.Email
	Role   kernel.Role
}

// ValidateToken verifies signature and expiry and returns the identity.
func (s *TokenService) ValidateToken(tokenString string) (*AuthContext, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, user.ErrInvalidCredentials().WithDetail("reason", "invalid or expired token")
	}

	return &AuthContext{
		UserID: kernel.UserID(claims.Subject),
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
