package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/coda/internal/config"
)

// Must match the redirect URI registered for the app in the Spotify
// developer dashboard.
const (
	redirectURI = "http://localhost:7777/callback"
	listenAddr  = "localhost:7777"
)

// Authenticator obtains a bearer token for the catalog API. Tokens are
// cached on disk between runs and refreshed when possible, so the
// interactive browser flow only happens on the first run per account.
type Authenticator struct {
	conf      *oauth2.Config
	cachePath string
	log       *zap.Logger
}

// NewAuthenticator builds an Authenticator for the given app credentials.
// The token cache lives in the working directory, keyed by username.
func NewAuthenticator(creds config.Credentials, log *zap.Logger) *Authenticator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Authenticator{
		conf: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{spotifyauth.ScopeUserReadRecentlyPlayed},
			Endpoint: oauth2.Endpoint{
				AuthURL:  spotifyauth.AuthURL,
				TokenURL: spotifyauth.TokenURL,
			},
		},
		cachePath: ".cache-" + creds.Username,
		log:       log,
	}
}

// Token returns a valid access token, refreshing the cached one or running
// the interactive authorization flow as needed. The token is assumed valid
// for the rest of the run.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	if cached, err := a.readCache(); err == nil {
		tok, err := a.conf.TokenSource(ctx, cached).Token()
		if err == nil {
			a.writeCache(tok)
			return tok.AccessToken, nil
		}
		a.log.Warn("cached token unusable, re-authorizing", zap.Error(err))
	}

	tok, err := a.authorize(ctx)
	if err != nil {
		return "", err
	}
	a.writeCache(tok)
	return tok.AccessToken, nil
}

// authorize runs the authorization-code flow against a loopback listener on
// the fixed redirect URI. The user visits the printed URL; the provider
// redirects back with a code which is exchanged for a token.
func (a *Authenticator) authorize(ctx context.Context) (*oauth2.Token, error) {
	state := uuid.NewString()

	type callbackResult struct {
		code string
		err  error
	}
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusForbidden)
			results <- callbackResult{err: errors.New("auth: state mismatch on callback")}
			return
		}
		if denied := r.URL.Query().Get("error"); denied != "" {
			http.Error(w, "authorization denied", http.StatusForbidden)
			results <- callbackResult{err: fmt.Errorf("auth: authorization denied: %s", denied)}
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this tab and return to the terminal.")
		results <- callbackResult{code: r.URL.Query().Get("code")}
	})

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("auth: listen on %s: %w", listenAddr, err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 15 * time.Second}
	go func() { _ = srv.Serve(ln) }()
	defer srv.Close()

	fmt.Printf("Open this URL in your browser to authorize access:\n\n%s\n\n", a.conf.AuthCodeURL(state))

	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		tok, err := a.conf.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("auth: exchange: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("auth: %w", ctx.Err())
	}
}

func (a *Authenticator) readCache() (*oauth2.Token, error) {
	raw, err := os.ReadFile(a.cachePath)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, err
	}
	if tok.RefreshToken == "" && !tok.Valid() {
		return nil, errors.New("auth: cached token expired with no refresh token")
	}
	return &tok, nil
}

func (a *Authenticator) writeCache(tok *oauth2.Token) {
	raw, err := json.Marshal(tok)
	if err == nil {
		err = os.WriteFile(a.cachePath, raw, 0o600)
	}
	if err != nil {
		a.log.Warn("token cache not written", zap.Error(err))
	}
}
