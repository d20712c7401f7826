package cli

import (
	"os"
	"strings"
)

// The session file holds the signed token from the last login, 0600 like any
// other credential file.

func saveSession(path, token string) error {
	return os.WriteFile(path, []byte(token), 0600)
}

func loadSession(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func clearSession(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
