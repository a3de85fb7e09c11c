package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func newTestRouter(users *UserHandler, posts *PostHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(NotFoundHandler)
	r.Route("/api", func(r chi.Router) {
		if users != nil {
			r.Post("/users", users.CreateUser)
			r.Get("/users", users.GetAllUsers)
			r.Get("/users/{id}", users.GetUserByID)
			r.Patch("/users/{id}", users.UpdateUser)
			r.Delete("/users/{id}", users.DeleteUser)
		}
		if posts != nil {
			r.Post("/posts", posts.CreatePost)
			r.Get("/posts", posts.GetAllPosts)
			r.Get("/posts/{id}", posts.GetPostByID)
			r.Patch("/posts/{id}", posts.UpdatePost)
			r.Delete("/posts/{id}", posts.DeletePost)
		}
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}
