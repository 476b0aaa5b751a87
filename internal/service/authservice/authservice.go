package authservice

import (
	"context"
	"errors"

	"github.com/cliphub/cliphub/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates the admin dashboard. Credentials come from
// configuration; there is exactly one operator account.
type Service struct {
	jwt          *auth.JWT
	username     string
	passwordHash string
}

func New(jwt *auth.JWT, username, passwordHash string) *Service {
	return &Service{
		jwt:          jwt,
		username:     username,
		passwordHash: passwordHash,
	}
}

func (s *Service) Login(_ context.Context, username, password string) (string, error) {
	if username != s.username || !auth.CheckPassword(s.passwordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.jwt.Generate(username)
}
