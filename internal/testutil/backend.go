// Package testutil provides a fake bot backend for handler tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/basketbot/admin-console/internal/backend"
)

// FakeBackend is an httptest server that plays the bot backend. Tests
// register JSON responses per method and path; unregistered paths 404.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []RecordedRequest
}

type route struct {
	status int
	body   any
}

// RecordedRequest captures what a handler sent upstream.
type RecordedRequest struct {
	Method  string
	Path    string
	Query   string
	Body    []byte
	Cookies []*http.Cookie
}

// NewFakeBackend starts the fake server and tears it down with the test.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{routes: map[string]route{}}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

// Client returns a backend client pointed at the fake server.
func (fb *FakeBackend) Client() *backend.Client {
	return backend.New(fb.Server.URL, 5*time.Second)
}

// Respond registers a JSON response for method+path (path without query).
func (fb *FakeBackend) Respond(method, path string, status int, body any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = route{status: status, body: body}
}

// RespondOK registers a 200 JSON response.
func (fb *FakeBackend) RespondOK(method, path string, body any) {
	fb.Respond(method, path, http.StatusOK, body)
}

// LoggedIn wires up GET /api/admin/me with a ready session: one team,
// already selected. Most page handler tests start here.
func (fb *FakeBackend) LoggedIn() {
	team := backend.Team{ID: 1, Name: "Тигры"}
	fb.RespondOK(http.MethodGet, "/api/admin/me", backend.Me{
		Teams:       []backend.Team{team},
		CurrentTeam: &team,
	})
}

// Requests returns a copy of everything recorded so far.
func (fb *FakeBackend) Requests() []RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]RecordedRequest, len(fb.requests))
	copy(out, fb.requests)
	return out
}

// LastRequest returns the most recent request matching method+path, or nil.
func (fb *FakeBackend) LastRequest(method, path string) *RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := len(fb.requests) - 1; i >= 0; i-- {
		if fb.requests[i].Method == method && fb.requests[i].Path == path {
			req := fb.requests[i]
			return &req
		}
	}
	return nil
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body := make([]byte, 0)
	if r.Body != nil {
		buf := make([]byte, 1<<20)
		n, _ := r.Body.Read(buf)
		body = buf[:n]
	}

	fb.mu.Lock()
	fb.requests = append(fb.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.RawQuery,
		Body:    body,
		Cookies: r.Cookies(),
	})
	rt, ok := fb.routes[r.Method+" "+r.URL.Path]
	fb.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rt.status)
	if rt.body != nil {
		_ = json.NewEncoder(w).Encode(rt.body)
	}
}
