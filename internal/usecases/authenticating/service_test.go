package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-performance-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, accessKey string, ttl time.Duration) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			AccessKeyHash: string(hash),
			TokenTTL:      ttl,
		},
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	service := NewService(authConfig(t, "chave-correta", time.Hour))

	token, err := service.Login("chave-correta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "viewer", claims.Role)
	assert.Equal(t, "dashboard", claims.Subject)
}

func TestLoginWithWrongKey(t *testing.T) {
	service := NewService(authConfig(t, "chave-correta", time.Hour))

	_, err := service.Login("chave-errada")
	assert.ErrorIs(t, err, ErrInvalidAccessKey)
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.Login("qualquer")
	assert.ErrorIs(t, err, ErrAccessKeyNotSet)
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewService(authConfig(t, "chave-correta", -time.Minute))

	token, err := service.Login("chave-correta")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenFromAnotherSecret(t *testing.T) {
	issuer := NewService(authConfig(t, "chave-correta", time.Hour))

	token, err := issuer.Login("chave-correta")
	require.NoError(t, err)

	validator := NewService(&config.Config{
		Auth: config.Auth{Secret: "outro-segredo"},
	})

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
