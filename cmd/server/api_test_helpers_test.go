package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/clean-api/internal/config"
	"github.com/phrazzld/clean-api/internal/platform/memory"
	"github.com/phrazzld/clean-api/internal/service"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

type entity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// steppingClock advances one second per reading so timestamps are strictly ordered.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               0,
			LogLevel:           "error",
			LogFormat:          "json",
			Environment:        config.EnvTest,
			BodyLimitBytes:     1 << 10,
			ShutdownTimeout:    2 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver:         config.DriverMemory,
			MaxConns:       1,
			IdleTimeout:    time.Second,
			ConnectTimeout: time.Second,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer starts the full router over in-memory stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	clock := &steppingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	app := &application{
		config:    testConfig(),
		logger:    discardLogger(),
		started:   time.Now(),
		userStore: memory.NewUserStore(memory.WithClock(clock.Now)),
		postStore: memory.NewPostStore(memory.WithClock(clock.Now)),
	}

	var err error
	app.userService, err = service.NewUserService(app.userStore, app.logger)
	require.NoError(t, err)
	app.postService, err = service.NewPostService(app.postStore, app.logger)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out apiResponse
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp, out
}

func decodeEntity(t *testing.T, data json.RawMessage) entity {
	t.Helper()
	var e entity
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}
