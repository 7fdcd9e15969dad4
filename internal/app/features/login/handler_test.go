package login

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
	"github.com/dalemusser/adminconsole/internal/testutil"
	"go.uber.org/zap"
)

const loginPath = "/api/v1/admin/login"

type testEnv struct {
	h        *Handler
	api      *testutil.FakeAPI
	sm       *auth.SessionManager
	rendered []loginFormData
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		api: testutil.NewFakeAPI(t),
		sm:  testutil.NewSessionManager(t),
	}
	limiter := ratelimit.NewLoginLimiter(5, time.Minute, false)
	t.Cleanup(limiter.Stop)

	env.h = NewHandler(env.api.Client(t), env.sm, limiter, auditlog.New(zap.NewNop(), auditlog.Config{}), zap.NewNop())
	env.h.render = func(w http.ResponseWriter, r *http.Request, data loginFormData) {
		env.rendered = append(env.rendered, data)
	}
	return env
}

func (env *testEnv) lastForm(t *testing.T) loginFormData {
	t.Helper()
	if len(env.rendered) == 0 {
		t.Fatal("login form was not rendered")
	}
	return env.rendered[len(env.rendered)-1]
}

func post(username, password string) *http.Request {
	return testutil.NewFormRequest("/login", url.Values{"username": {username}, "password": {password}})
}

func TestHandleLoginPost_Success(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusOK, `{"success":true,"token":"tok-abc"}`)

	rec := testutil.NewRecorder()
	env.h.HandleLoginPost(rec, post("root", "hunter2"))

	rec.AssertRedirect(t, "/dashboard")
	if len(env.rendered) != 0 {
		t.Errorf("form re-rendered on success: %+v", env.rendered)
	}

	got, ok := env.api.Last(loginPath)
	if !ok {
		t.Fatal("login endpoint not called")
	}
	if got.Method != http.MethodPost || got.Body != `{"password":"hunter2","username":"root"}` {
		t.Errorf("login request: %s %s", got.Method, got.Body)
	}
	if got.Authorization != "" {
		t.Errorf("login must not carry a bearer token, got %q", got.Authorization)
	}

	// The stored cookie round-trips into a session carrying the token.
	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	var token string
	env.sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ = auth.Token(r)
	})).ServeHTTP(httptest.NewRecorder(), req)
	if token != "tok-abc" {
		t.Errorf("session token: got %q, want tok-abc", token)
	}
}

func TestHandleLoginPost_HTMXSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusOK, `{"success":true,"token":"tok-abc"}`)

	req := post("root", "pw")
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	env.h.HandleLoginPost(rec, req)

	rec.AssertHXRedirect(t, "/dashboard")
}

func TestHandleLoginPost_ReturnURL(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusOK, `{"success":true,"token":"tok-abc"}`)

	req := testutil.NewFormRequest("/login", url.Values{
		"username": {"root"},
		"password": {"pw"},
		"return":   {"/dashboard?section=payments"},
	})
	rec := testutil.NewRecorder()
	env.h.HandleLoginPost(rec, req)

	rec.AssertRedirect(t, "/dashboard?section=payments")
}

func TestHandleLoginPost_ServerMessageShownVerbatim(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusOK, `{"success":false,"message":"bad credentials"}`)

	rec := testutil.NewRecorder()
	env.h.HandleLoginPost(rec, post("root", "wrong"))

	form := env.lastForm(t)
	if form.Error != "bad credentials" {
		t.Errorf("Error: got %q, want %q", form.Error, "bad credentials")
	}
	if form.Username != "root" {
		t.Errorf("Username: got %q", form.Username)
	}
	if _, ok := rec.Cookie(testutil.SessionName); ok {
		t.Error("no session cookie expected after a rejected login")
	}
}

func TestHandleLoginPost_401WithMessage(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusUnauthorized, `{"success":false,"message":"bad credentials"}`)

	env.h.HandleLoginPost(testutil.NewRecorder(), post("root", "wrong"))

	if got := env.lastForm(t).Error; got != "bad credentials" {
		t.Errorf("Error: got %q", got)
	}
}

func TestHandleLoginPost_MissingFields(t *testing.T) {
	for _, tc := range []struct{ user, pass string }{
		{"", "pw"},
		{"root", ""},
		{"   ", "pw"},
	} {
		env := newTestEnv(t)
		env.h.HandleLoginPost(testutil.NewRecorder(), post(tc.user, tc.pass))

		if got := env.lastForm(t).Error; got != msgMissingFields {
			t.Errorf("%q/%q: Error %q", tc.user, tc.pass, got)
		}
		if n := env.api.Count(loginPath); n != 0 {
			t.Errorf("%q/%q: API called %d times", tc.user, tc.pass, n)
		}
	}
}

func TestHandleLoginPost_Throttled(t *testing.T) {
	env := newTestEnv(t)
	env.api.Respond(loginPath, http.StatusOK, `{"success":false,"message":"bad credentials"}`)

	for i := 0; i < 5; i++ {
		env.h.HandleLoginPost(testutil.NewRecorder(), post("root", "wrong"))
	}
	env.h.HandleLoginPost(testutil.NewRecorder(), post("root", "wrong"))

	if got := env.lastForm(t).Error; got != msgThrottled {
		t.Errorf("Error: got %q, want %q", got, msgThrottled)
	}
	if n := env.api.Count(loginPath); n != 5 {
		t.Errorf("API calls: got %d, want 5", n)
	}
}

func TestServeLogin_SignedInSkipsForm(t *testing.T) {
	env := newTestEnv(t)

	rec := testutil.NewRecorder()
	env.h.ServeLogin(rec, testutil.NewAuthenticatedRequest("GET", "/login"))

	rec.AssertRedirect(t, "/dashboard")
	if len(env.rendered) != 0 {
		t.Error("form rendered for a signed-in admin")
	}
}

func TestServeLogin_ExpiredNotice(t *testing.T) {
	env := newTestEnv(t)

	env.h.ServeLogin(testutil.NewRecorder(), testutil.NewRequest("GET", "/login?expired=1"))
	if got := env.lastForm(t).Notice; got != msgExpired {
		t.Errorf("Notice: got %q", got)
	}

	env.h.ServeLogin(testutil.NewRecorder(), testutil.NewRequest("GET", "/login"))
	if got := env.lastForm(t).Notice; got != "" {
		t.Errorf("Notice without expired: got %q", got)
	}
}

func TestLoginErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &adminapi.APIError{Status: 200, Message: "account locked"}, "account locked"},
		{"rejected without message", &adminapi.APIError{Status: 200}, msgRejected},
		{"4xx without message", &adminapi.APIError{Status: 403}, msgRejected},
		{"5xx without message", &adminapi.APIError{Status: 502}, msgUnavailable},
		{"transport", errors.New("dial tcp: connection refused"), msgUnavailable},
		{"wrapped api error", fmt.Errorf("login: %w", &adminapi.APIError{Status: 400, Message: "bad credentials"}), "bad credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loginErrorMessage(tt.err); got != tt.want {
				t.Errorf("loginErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
