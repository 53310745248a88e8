package auth

import (
	"testing"

	"placehub/config"
	"placehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := &entity.User{
		ID:   uuid.New(),
		Role: entity.RoleModerator,
	}

	accessToken, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleModerator, claims.Role)
	assert.False(t, claims.Superuser)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	_, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)

	// A refresh token is signed with a different secret and must not
	// authenticate requests.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_SuperuserClaim(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	user := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleUser,
		IsSuperuser: true,
	}

	accessToken, _, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.True(t, claims.Superuser)
	assert.True(t, entity.CapabilityOf(claims.Role, claims.Superuser).Admin)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
