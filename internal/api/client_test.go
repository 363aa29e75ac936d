package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/contact", withRequestIDs(func() string { return "req-1" }))
	require.NoError(t, err)
	return c
}

func TestNewClient_Endpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "https", in: "https://example.com/contact"},
		{name: "http with port", in: "http://localhost:8080/contact"},
		{name: "relative", in: "/contact", wantErr: true},
		{name: "mailto", in: "mailto:a@b.co", wantErr: true},
		{name: "garbage", in: "://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewClient(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEndpoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, c.Endpoint())
		})
	}
}

func TestSubmitContact_PostsJSON(t *testing.T) {
	t.Parallel()

	var hits int
	var got map[string]string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.Contains(t, r.Header.Get("User-Agent"), "portfolio/")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})
	c := newTestClient(t, h)

	err := c.SubmitContact(context.Background(), ContactRequest{
		FirstName:    "Jane",
		EmailAddress: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, map[string]string{
		"firstName":    "Jane",
		"lastName":     "",
		"emailAddress": "jane@example.com",
		"emailMessage": "",
	}, got)
}

func TestSubmitContact_RemoteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json error", http.StatusBadRequest, `{"error":"emailAddress is required"}`, "emailAddress is required"},
		{"json message", http.StatusTooManyRequests, `{"message":"slow down"}`, "slow down"},
		{"plain text", http.StatusInternalServerError, "boom\n", "boom"},
		{"empty", http.StatusBadGateway, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			err := c.SubmitContact(context.Background(), ContactRequest{EmailAddress: "a@b.co"})
			var re RemoteError
			require.True(t, errors.As(err, &re), "got %v", err)
			assert.Equal(t, tt.status, re.StatusCode)
			assert.Equal(t, "req-1", re.RequestID)
			assert.Equal(t, tt.wantMsg, re.Message)
			assert.Contains(t, re.Error(), "remote error")
		})
	}
}

func TestSubmitContact_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)
	err = c.SubmitContact(context.Background(), ContactRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post contact")
}

func TestSubmitContact_ContextCanceled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.SubmitContact(ctx, ContactRequest{})
	require.ErrorIs(t, err, context.Canceled)
}
