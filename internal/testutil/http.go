package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/system/auth"
)

// TestToken is the bearer token carried by authenticated test requests.
const TestToken = "test-admin-token"

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a session carrying
// TestToken in context.
func NewAuthenticatedRequest(method, target string) *http.Request {
	return auth.WithTestSession(httptest.NewRequest(method, target, nil), TestToken)
}

// NewHTMXRequest creates an authenticated request as htmx issues it.
func NewHTMXRequest(method, target string) *http.Request {
	req := NewAuthenticatedRequest(method, target)
	req.Header.Set("HX-Request", "true")
	return req
}

// NewFormRequest creates a POST with an urlencoded body.
func NewFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertHXRedirect checks the HX-Redirect header htmx follows.
func (r *ResponseRecorder) AssertHXRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if got := r.Header().Get("HX-Redirect"); got != expectedLocation {
		t.Errorf("HX-Redirect: got %q, want %q", got, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// CookieCleared reports whether the response deletes the named cookie.
func (r *ResponseRecorder) CookieCleared(name string) bool {
	for _, c := range r.Result().Cookies() {
		if c.Name == name && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

// Cookie returns the named cookie set by the response, if any.
func (r *ResponseRecorder) Cookie(name string) (*http.Cookie, bool) {
	for _, c := range r.Result().Cookies() {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
