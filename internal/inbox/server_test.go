package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/portfolio/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := New(newStore(t)).Handler()
	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPostContact(t *testing.T) {
	st := newStore(t)
	h := New(st, WithToken("secret")).Handler()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"firstName":"Jane","lastName":"","emailAddress":"jane@example.com","emailMessage":"hello"}`, http.StatusCreated},
		{"invalid email", `{"firstName":"Jane","emailAddress":"abc"}`, http.StatusBadRequest},
		{"missing email", `{"firstName":"Jane"}`, http.StatusBadRequest},
		{"malformed", `{"firstName":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/contact", tt.body, map[string]string{"X-Request-Id": "req-9"})
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	subs, err := st.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "req-9", subs[0].RequestID)
	assert.Equal(t, "hello", subs[0].EmailMessage)
}

func TestListContacts_Auth(t *testing.T) {
	st := newStore(t)
	_, err := st.Save(context.Background(), storage.Submission{EmailAddress: "jane@example.com"})
	require.NoError(t, err)

	noToken := New(st).Handler()
	assert.Equal(t, http.StatusNotFound, do(t, noToken, http.MethodGet, "/contact", "", nil).Code)

	h := New(st, WithToken("secret")).Handler()
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/contact", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, h, http.MethodGet, "/contact", "", map[string]string{"Authorization": "Bearer nope"}).Code)

	rec := do(t, h, http.MethodGet, "/contact?limit=10", "", map[string]string{"Authorization": "Bearer secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Total       int64                `json:"total"`
		Submissions []storage.Submission `json:"submissions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Total)
	require.Len(t, body.Submissions, 1)

	rec = do(t, h, http.MethodGet, "/contact/"+body.Submissions[0].ID, "", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/contact/missing", "", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/contact?limit=zero", "", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingStore struct{ Store }

func (failingStore) Save(context.Context, storage.Submission) (storage.Submission, error) {
	return storage.Submission{}, errors.New("disk full")
}

func TestPostContact_StoreFailure(t *testing.T) {
	h := New(failingStore{}).Handler()
	rec := do(t, h, http.MethodPost, "/contact", `{"emailAddress":"jane@example.com"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	h := New(newStore(t), WithAllowOrigin("https://example.com")).Handler()
	rec := do(t, h, http.MethodOptions, "/contact", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
