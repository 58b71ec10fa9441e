package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateParseRoundtrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestParseToken_TypeMismatch(t *testing.T) {
	// access token 不能当确认 token 用
	token, err := GenerateToken(testSecret, 42, TypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, TypeConfirm, token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, TypeConfirm, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, TypeConfirm, token)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, TypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), TypeAccess, token)
	assert.Error(t, err)
}
