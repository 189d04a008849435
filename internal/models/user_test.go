// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("hemmeligt1"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "hemmeligt1", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("hemmeligt1"))
	assert.Error(t, user.CheckPassword("forkert"))
	assert.Error(t, user.CheckPassword(""))
}

func TestSetPasswordReplacesHash(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("gammelkode"))
	oldHash := user.PasswordHash

	require.NoError(t, user.SetPassword("nykode123"))
	assert.NotEqual(t, oldHash, user.PasswordHash)

	assert.Error(t, user.CheckPassword("gammelkode"))
	assert.NoError(t, user.CheckPassword("nykode123"))
}

func TestIsAdmin(t *testing.T) {
	admin := User{Role: UserRoleAdmin}
	assert.True(t, admin.IsAdmin())

	user := User{Role: UserRoleUser}
	assert.False(t, user.IsAdmin())
}
