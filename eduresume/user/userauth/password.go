package userauth

import (
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// BcryptPasswordService is the production implementation.
type BcryptPasswordService struct {
	cost int
}

func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: 10}
}

func (s *BcryptPasswordService) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}
	return string(hash), nil
}

func (s *BcryptPasswordService) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
