package secrets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestEnsureAdminToken_CreatesThenReuses(t *testing.T) {
	keyring.MockInit()
	account := AdminAccount(t.TempDir())

	tok, persisted, err := EnsureAdminToken(account)
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Len(t, tok, 64)

	again, persisted, err := EnsureAdminToken(account)
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Equal(t, tok, again)

	require.NoError(t, DeleteAdminToken(account))
	_, err = GetAdminToken(account)
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}

func TestEnsureAdminToken_KeyringUnavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("no keychain"))

	tok, persisted, err := EnsureAdminToken(AdminAccount("data"))
	assert.Error(t, err)
	assert.False(t, persisted)
	assert.NotEmpty(t, tok)
}

func TestAdminTokenValidation(t *testing.T) {
	keyring.MockInit()
	assert.Error(t, SetAdminToken("", "x"))
	assert.Error(t, SetAdminToken("acct", " "))
	assert.Error(t, DeleteAdminToken(""))
	_, err := GetAdminToken("")
	assert.Error(t, err)
}

func TestAdminAccount_DiffersPerDir(t *testing.T) {
	assert.NotEqual(t, AdminAccount("/a"), AdminAccount("/b"))
}
