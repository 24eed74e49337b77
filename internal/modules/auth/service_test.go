package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubIssuer struct{}

func (stubIssuer) GenerateToken(role string) (string, error) { return "token-" + role, nil }

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	service := NewService(string(hash), stubIssuer{})

	token, err := service.Login("admin123")
	assert.NoError(t, err)
	assert.Equal(t, "token-admin", token)

	_, err = service.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
