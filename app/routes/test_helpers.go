package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogposts/app/middleware"
	"blogposts/app/repositories"

	"github.com/stretchr/testify/require"
)

const (
	testLogin    = "admin"
	testPassword = "qwerty"
)

func setupTestStore(t *testing.T) *repositories.Store {
	store, err := repositories.OpenStore("", true, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func setupTestRouter(t *testing.T, store *repositories.Store) http.Handler {
	creds, err := middleware.NewCredentials(testLogin, testPassword)
	require.NoError(t, err)

	return SetupRoutes(Dependencies{
		Blogs:          store.Blogs(),
		Posts:          store.Posts(),
		Credentials:    creds,
		AllowedOrigins: []string{"*"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

type client struct {
	t      *testing.T
	router http.Handler
}

func (c client) request(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.SetBasicAuth(testLogin, testPassword)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c client) decode(w *httptest.ResponseRecorder, v interface{}) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
