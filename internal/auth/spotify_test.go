package auth

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/coda/internal/config"
)

func testCreds() config.Credentials {
	return config.Credentials{Username: "wanderer", ClientID: "abc123", ClientSecret: "s3cret"}
}

func newCachedAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	a := NewAuthenticator(testCreds(), nil)
	a.cachePath = filepath.Join(t.TempDir(), ".cache-wanderer")
	return a
}

func TestAuthCodeURLCarriesAppSettings(t *testing.T) {
	a := NewAuthenticator(testCreds(), nil)

	u, err := url.Parse(a.conf.AuthCodeURL("state-1"))
	require.NoError(t, err)

	assert.Equal(t, "accounts.spotify.com", u.Host)
	q := u.Query()
	assert.Equal(t, "abc123", q.Get("client_id"))
	assert.Equal(t, redirectURI, q.Get("redirect_uri"))
	assert.Equal(t, "user-read-recently-played", q.Get("scope"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
}

func TestTokenUsesCachedToken(t *testing.T) {
	a := newCachedAuthenticator(t)

	a.writeCache(&oauth2.Token{
		AccessToken:  "cached-token",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	})

	// A still-valid cached token is returned as-is; no request leaves the
	// process.
	got, err := a.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-token", got)
}

func TestCacheRoundTrip(t *testing.T) {
	a := newCachedAuthenticator(t)

	want := &oauth2.Token{
		AccessToken:  "tok",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}
	a.writeCache(want)

	got, err := a.readCache()
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.WithinDuration(t, want.Expiry, got.Expiry, time.Second)
}

func TestCacheFileIsPrivate(t *testing.T) {
	a := newCachedAuthenticator(t)

	a.writeCache(&oauth2.Token{AccessToken: "tok"})

	info, err := os.Stat(a.cachePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestReadCacheRejectsDeadToken(t *testing.T) {
	a := newCachedAuthenticator(t)

	// Expired and not refreshable: the flow has to start over.
	a.writeCache(&oauth2.Token{
		AccessToken: "stale",
		Expiry:      time.Now().Add(-time.Hour),
	})

	_, err := a.readCache()
	require.Error(t, err)
}
