package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credentials identifies the Spotify application and the account whose
// history is being processed. Note the secret's JSON key is "secret", not
// "client_secret".
type Credentials struct {
	Username     string `json:"username"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"secret"`
}

// LoadCredentials reads and validates the credentials file at path.
func LoadCredentials(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("config: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if creds.Username == "" || creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, fmt.Errorf("config: %s must set username, client_id and secret", path)
	}

	return creds, nil
}
