package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.GenerateAccessToken(7, "ada@test.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.MemberID)
	assert.Equal(t, "ada@test.com", claims.Email)
	assert.Equal(t, "openshelf-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := &tokenManager{secret: []byte(testSecret), expiry: -time.Minute}

	token, err := manager.GenerateAccessToken(7, "ada@test.com")
	assert.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-0123456789abcdef01234", 60)

	token, err := manager.GenerateAccessToken(7, "ada@test.com")
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	claims, err := manager.ValidateToken("not-a-jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
