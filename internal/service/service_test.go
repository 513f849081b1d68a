package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/backend"
	"github.com/eltonkaiton/mombasa-admin/internal/config"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
)

// fakeBackend serves canned responses keyed by "METHOD /path" and counts
// every request it receives.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	hits   []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *backend.Client) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
	return fb, client
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	fb.mu.Lock()
	fb.hits = append(fb.hits, key)
	handler, ok := fb.routes[key]
	fb.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	handler(w, r)
}

func (fb *fakeBackend) on(key string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[key] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (fb *fakeBackend) count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.hits)
}

type statusCounter struct {
	mu    sync.Mutex
	calls []string
}

func (s *statusCounter) RecordStatusChange(entity, status string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	s.calls = append(s.calls, entity+":"+status+":"+outcome)
}

type recordedEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordedEvents) deps(metrics StatusRecorder) Dependencies {
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.SubscribeAll(func(_ context.Context, e events.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
		return nil
	})
	return Dependencies{Dispatcher: dispatcher, Metrics: metrics, Logger: zap.NewNop()}
}

func (r *recordedEvents) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func tokenFor(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func loginBody(t *testing.T, token string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"loginStatus": true, "token": token})
	require.NoError(t, err)
	return string(raw)
}

var adminCaller = Caller{Token: "tok", Principal: domain.Principal{ID: "a1", Email: "admin@x.com", Role: domain.RoleAdmin}}
