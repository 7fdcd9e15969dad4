package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"go.uber.org/zap"
)

// RecordedRequest is one request received by the FakeAPI.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	RequestID     string
	Body          string
}

type cannedResponse struct {
	status int
	body   string
}

// FakeAPI is an httptest Admin API. Responses are registered per path; a
// path without one answers 404 with a non-success envelope.
type FakeAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []RecordedRequest
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{responses: make(map[string]cannedResponse)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// Respond registers the status and JSON body returned for path.
func (f *FakeAPI) Respond(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = cannedResponse{status: status, body: body}
}

// Client returns an adminapi.Client pointed at the fake.
func (f *FakeAPI) Client(t *testing.T) *adminapi.Client {
	t.Helper()
	c, err := adminapi.New(f.Server.URL, 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("adminapi.New: %v", err)
	}
	return c
}

// Requests returns a copy of every request received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count returns how many requests reached path.
func (f *FakeAPI) Count(path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the most recent request for path.
func (f *FakeAPI) Last(path string) (RecordedRequest, bool) {
	reqs := f.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return RecordedRequest{}, false
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get(adminapi.RequestIDHeader),
		Body:          string(body),
	})
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusNotFound, body: `{"success":false,"message":"not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}
