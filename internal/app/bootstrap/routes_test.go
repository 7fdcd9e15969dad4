package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
	"github.com/dalemusser/adminconsole/internal/testutil"
	"github.com/dalemusser/waffle/config"
)

const (
	usersAPIPath    = "/api/v1/admin/users"
	overviewAPIPath = "/api/v1/admin/financial-overview"
	statsAPIPath    = "/api/v1/admin/stats"
)

// newTestRouter builds the full handler against a fake Admin API, booting the
// real template engine the way the server does.
func newTestRouter(t *testing.T) (http.Handler, *testutil.FakeAPI, AppConfig) {
	t.Helper()
	api := testutil.NewFakeAPI(t)

	cfg := validAppConfig()
	cfg.APIBaseURL = api.Server.URL
	cfg.SiteName = "Admin Console"
	cfg.Locale = "en"
	cfg.CurrencySymbol = "$"

	limiter := ratelimit.NewLoginLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow, cfg.TrustProxyHeaders)
	t.Cleanup(limiter.Stop)
	deps := DBDeps{API: api.Client(t), LoginLimiter: limiter}

	coreCfg := &config.CoreConfig{Env: "test"}
	if err := Startup(context.Background(), coreCfg, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	h, err := BuildHandler(coreCfg, cfg, deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h, api, cfg
}

// sessionCookie signs in with the router's session settings and returns the
// resulting cookie.
func sessionCookie(t *testing.T, cfg AppConfig) *http.Cookie {
	t.Helper()
	sm, err := auth.NewSessionManager(cfg.SessionKey, cfg.SessionName, "", cfg.SessionMaxAge, false, testLogger())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	rec := httptest.NewRecorder()
	if err := sm.SignIn(rec, httptest.NewRequest(http.MethodGet, "/login", nil), testutil.TestToken); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.SessionName {
			return c
		}
	}
	t.Fatal("no session cookie written")
	return nil
}

func serve(h http.Handler, method, target string, cookie *http.Cookie, htmx bool) *testutil.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_SectionErrorRendersInline(t *testing.T) {
	h, api, cfg := newTestRouter(t)
	api.Respond(usersAPIPath, http.StatusInternalServerError, `{"success":false}`)

	rec := serve(h, http.MethodGet, "/users/table", sessionCookie(t, cfg), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<div class="load-error" role="alert">Error loading users</div>`)
}

func TestRouter_StatsErrorRendersInline(t *testing.T) {
	h, api, cfg := newTestRouter(t)
	api.Respond(statsAPIPath, http.StatusOK, `{"success":false,"message":"down"}`)

	rec := serve(h, http.MethodGet, "/dashboard/stats", sessionCookie(t, cfg), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Error loading stats")
}

func TestRouter_EmptyUsersRendersMessage(t *testing.T) {
	h, api, cfg := newTestRouter(t)
	api.Respond(usersAPIPath, http.StatusOK, `{"success":true,"users":[]}`)

	rec := serve(h, http.MethodGet, "/users/table", sessionCookie(t, cfg), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "No users found.")
	if strings.Contains(rec.Body.String(), "<table") {
		t.Error("empty result must not render a table")
	}
	if got, _ := api.Last(usersAPIPath); got.Authorization != "Bearer "+testutil.TestToken {
		t.Errorf("Authorization: got %q", got.Authorization)
	}
}

func TestRouter_OverviewKeepsTimeframeSelected(t *testing.T) {
	h, api, cfg := newTestRouter(t)
	api.Respond(overviewAPIPath, http.StatusOK, `{"success":true,"financialData":{},"timeframe":"90d"}`)

	rec := serve(h, http.MethodGet, "/overview/table?timeframe=90d", sessionCookie(t, cfg), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<option value="90d" selected>`)
	rec.AssertContains(t, `hx-swap-oob="true"`)
	if got, _ := api.Last(overviewAPIPath); got.Query.Get("timeframe") != "90d" {
		t.Errorf("timeframe forwarded: %v", got.Query)
	}
}

func TestRouter_DashboardPage(t *testing.T) {
	h, api, cfg := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/dashboard", sessionCookie(t, cfg), false)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `hx-get="/dashboard/stats"`)
	rec.AssertContains(t, `hx-get="/users/panel"`)
	rec.AssertContains(t, `action="/logout"`)
	if n := len(api.Requests()); n != 0 {
		t.Errorf("the shell must not call the API, got %d calls", n)
	}
}

func TestRouter_LoginPageCarriesCSRFToken(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/login", nil, false)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `name="gorilla.csrf.Token"`)
	if strings.Contains(rec.Body.String(), `name="gorilla.csrf.Token" value=""`) {
		t.Error("login form rendered an empty CSRF token")
	}
}

func TestRouter_SignedOutRedirects(t *testing.T) {
	h, _, _ := newTestRouter(t)

	serve(h, http.MethodGet, "/", nil, false).AssertRedirect(t, "/login")
	serve(h, http.MethodGet, "/users/table", nil, true).AssertHXRedirect(t, "/login?return=%2Fusers%2Ftable")
}

func TestRouter_SignedInRootGoesToDashboard(t *testing.T) {
	h, _, cfg := newTestRouter(t)

	serve(h, http.MethodGet, "/", sessionCookie(t, cfg), false).AssertRedirect(t, "/dashboard")
}

func TestRouter_NotFound(t *testing.T) {
	h, _, cfg := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/no-such-page", sessionCookie(t, cfg), true)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Not found")
}

func TestRouter_LogoutRequiresPost(t *testing.T) {
	h, _, cfg := newTestRouter(t)
	cookie := sessionCookie(t, cfg)

	rec := serve(h, http.MethodGet, "/logout", cookie, false)
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
	if rec.CookieCleared(cfg.SessionName) {
		t.Error("GET /logout must not clear the session")
	}

	// A cross-site POST without the CSRF token is refused.
	rec = serve(h, http.MethodPost, "/logout", cookie, false)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestRouter_HealthOutsideCSRF(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/health", nil, false)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status"`)
}
