// Package auth is the authentication stub: a single admin credential from
// configuration, exchanged for a bearer token that gates the admin routes.
// There are no user accounts.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	GenerateToken(role string) (string, error)
}

type Service struct {
	passwordHash []byte
	tokens       TokenIssuer
}

// NewService takes the bcrypt hash of the admin password.
func NewService(passwordHash string, tokens TokenIssuer) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

// Login checks the admin password and returns a signed token.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken("admin")
}
