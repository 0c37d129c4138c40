package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoarena/backend/auth"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	key := []byte("test-key")
	userUuid := uuid.New()

	token, err := auth.GenerateJWT("alice", userUuid, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, userUuid, claims.UserUUID)
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := auth.GenerateJWT("alice", uuid.New(), []byte("right-key"))
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("wrong-key"))
	require.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := auth.ValidateJWT("not.a.token", []byte("key"))
	require.Error(t, err)
}
