package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, entity.RoleAdmin, session.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
