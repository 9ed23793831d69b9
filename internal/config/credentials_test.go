package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/coda/internal/config"
)

func writeCreds(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredentials(t *testing.T) {
	path := writeCreds(t, `{
		"username": "wanderer",
		"client_id": "abc123",
		"secret": "s3cret"
	}`)

	creds, err := config.LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "wanderer", creds.Username)
	assert.Equal(t, "abc123", creds.ClientID)
	assert.Equal(t, "s3cret", creds.ClientSecret)
}

func TestLoadCredentialsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{ "username": `},
		{name: "missing username", content: `{ "client_id": "abc", "secret": "s" }`},
		{name: "missing client_id", content: `{ "username": "u", "secret": "s" }`},
		{name: "missing secret", content: `{ "username": "u", "client_id": "abc" }`},
		{name: "wrong secret key", content: `{ "username": "u", "client_id": "abc", "client_secret": "s" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadCredentials(writeCreds(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := config.LoadCredentials(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
