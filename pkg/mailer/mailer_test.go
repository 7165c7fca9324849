package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsTemplatedMessage(t *testing.T) {
	var got sendRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := New(Config{APIKey: "key-123", BaseURL: srv.URL, FromAddress: "no-reply@mingleme.app"})

	err := m.Send(context.Background(), "alice@example.com", TemplateVerificationCode,
		map[string]string{"code": "123456"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key-123", auth)
	assert.Equal(t, "alice@example.com", got.To)
	assert.Equal(t, "no-reply@mingleme.app", got.From)
	assert.Equal(t, TemplateVerificationCode, got.Template)
	assert.Equal(t, "123456", got.Payload["code"])
}

func TestSendRejectsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := New(Config{APIKey: "bad", BaseURL: srv.URL, FromAddress: "no-reply@mingleme.app"})
	err := m.Send(context.Background(), "alice@example.com", TemplateWelcome, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNoopDropsMessages(t *testing.T) {
	assert.NoError(t, Noop{}.Send(context.Background(), "anyone@example.com", TemplateWelcome, nil))
}
