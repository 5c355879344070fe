package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every request made with a client from GetClient.
const DefaultTimeout = 30 * time.Second

// ErrMissingToken is returned when an API token is empty.
var ErrMissingToken = errors.New("auth: missing API token")

// TokenSource wraps a personal API token. Todoist and Notion tokens do not
// expire, so the source never refreshes.
func TokenSource(token string) (oauth2.TokenSource, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}), nil
}

// GetClient returns an *http.Client that sends "Authorization: Bearer <token>"
// on every request.
func GetClient(ctx context.Context, token string) (*http.Client, error) {
	ts, err := TokenSource(token)
	if err != nil {
		return nil, err
	}
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = DefaultTimeout
	return client, nil
}
