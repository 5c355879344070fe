package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientSendsBearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := GetClient(context.Background(), "0123456789abcdef")
	require.NoError(t, err)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer 0123456789abcdef", got)
	assert.Equal(t, DefaultTimeout, client.Timeout)
}

func TestGetClientMissingToken(t *testing.T) {
	_, err := GetClient(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)
}
