package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's entries in the OS keychain.
const KeyringService = "jobtrack"

// AdminAccount names the keychain entry holding the admin token for one
// data directory, so separate installs do not share a token.
func AdminAccount(dataDir string) string {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		abs = dataDir
	}
	return fmt.Sprintf("jobtrack:admin:%s", abs)
}

func GetAdminToken(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	tok, err := keyring.Get(KeyringService, account)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tok) == "" {
		return "", keyring.ErrNotFound
	}
	return tok, nil
}

func SetAdminToken(account, token string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func DeleteAdminToken(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

// EnsureAdminToken returns the stored token for account, creating and
// storing a new one when none exists. When the keychain is unavailable the
// new token is still returned with persisted=false and the error.
func EnsureAdminToken(account string) (string, bool, error) {
	tok, getErr := GetAdminToken(account)
	if getErr == nil {
		return tok, true, nil
	}

	tok, err := RandomToken(32)
	if err != nil {
		return "", false, err
	}
	if !errors.Is(getErr, keyring.ErrNotFound) {
		return tok, false, getErr
	}
	if err := SetAdminToken(account, tok); err != nil {
		return tok, false, err
	}
	return tok, true, nil
}

func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
