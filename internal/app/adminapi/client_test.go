package adminapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.HandlerFunc) *adminapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := adminapi.New(srv.URL, 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	if _, err := adminapi.New("/api", time.Second, nil); err == nil {
		t.Fatal("expected error for relative base url")
	}
	if _, err := adminapi.New("ftp://example.com", time.Second, nil); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/admin/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not carry a bearer token")
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, `{"success":true,"token":"tok-123"}`)
	})

	token, err := c.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token: got %q, want %q", token, "tok-123")
	}
	if gotBody["username"] != "admin" || gotBody["password"] != "secret" {
		t.Errorf("login body: got %v", gotBody)
	}
}

func TestLogin_RejectedCarriesServerMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"bad credentials"}`)
	})

	_, err := c.Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, adminapi.ErrUnauthorized) {
		t.Error("a rejected login is not a session expiry")
	}
	msg, ok := adminapi.MessageOf(err)
	if !ok || msg != "bad credentials" {
		t.Errorf("message: got %q (%v), want %q", msg, ok, "bad credentials")
	}
}

func TestLogin_SuccessWithoutTokenFails(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	_, err := c.Login(context.Background(), "admin", "secret")
	var apiErr *adminapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
}

func TestLogin_TransportFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := adminapi.New(url, time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Login(context.Background(), "admin", "secret")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !adminapi.IsTransient(err) {
		t.Errorf("expected transient error, got %v", err)
	}
}

func TestAuthenticatedCall_SendsBearerAndRequestID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Authorization: got %q", got)
		}
		if r.Header.Get(adminapi.RequestIDHeader) == "" {
			t.Error("missing request id header")
		}
		writeJSON(w, http.StatusOK, `{"success":true,"stats":{"totalUsers":3,"totalTransactions":"7","totalRevenue":12.5}}`)
	})

	stats, err := c.Stats(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalUsers != 3 || stats.TotalTransactions != 7 || stats.TotalRevenue != 12.5 || stats.TotalVideos != 0 {
		t.Errorf("stats: got %+v", stats)
	}
}

func TestAuthenticatedCall_401IsUnauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"expired"}`)
	})

	ctx := context.Background()
	calls := map[string]func() error{
		"stats": func() error {
			_, err := c.Stats(ctx, "t")
			return err
		},
		"users": func() error {
			_, err := c.Users(ctx, "t", "")
			return err
		},
		"users-by-date": func() error {
			_, err := c.UsersByDate(ctx, "t", "2024-01-02")
			return err
		},
		"transactions": func() error {
			_, err := c.Transactions(ctx, "t", "")
			return err
		},
		"payments": func() error {
			_, err := c.Payments(ctx, "t", "")
			return err
		},
		"creator-passes": func() error {
			_, err := c.CreatorPasses(ctx, "t", "")
			return err
		},
		"financial-overview": func() error {
			_, err := c.FinancialOverview(ctx, "t", adminapi.TimeframeAll)
			return err
		},
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, adminapi.ErrUnauthorized) {
			t.Errorf("%s: got %v, want ErrUnauthorized", name, err)
		}
	}
}

func TestAuthenticatedCall_NonSuccessEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"message":"db down"}`)
	})

	_, err := c.Users(context.Background(), "t", "")
	var apiErr *adminapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "db down" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}

func TestAuthenticatedCall_ServerErrorWithHTMLBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.Payments(context.Background(), "t", "")
	var apiErr *adminapi.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected APIError 502, got %v", err)
	}
}

func TestUsers_ForwardsSearch(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/users" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "ann lee" {
			t.Errorf("search: got %q", got)
		}
		writeJSON(w, http.StatusOK, `{"success":true,"users":[{"username":"ann"},"garbage",{"email":"x@y.z"}]}`)
	})

	users, err := c.Users(context.Background(), "t", "  ann lee ")
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users (malformed element kept as empty), got %d", len(users))
	}
	if users[0].Username.String() != "ann" || users[1].Username != "" || users[2].Email.String() != "x@y.z" {
		t.Errorf("users: got %+v", users)
	}
}

func TestUsers_EmptySearchOmitsParameter(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	users, err := c.Users(context.Background(), "t", "")
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}

func TestDateFilteredEndpoints(t *testing.T) {
	var paths []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2024-03-05" {
			t.Errorf("%s date: got %q", r.URL.Path, got)
		}
		paths = append(paths, r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"users":[],"transactions":[],"payments":[]}`)
	})

	ctx := context.Background()
	if _, err := c.UsersByDate(ctx, "t", "2024-03-05"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Transactions(ctx, "t", "2024-03-05"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Payments(ctx, "t", "2024-03-05"); err != nil {
		t.Fatal(err)
	}
	want := "/api/v1/admin/users-by-date,/api/v1/admin/transactions,/api/v1/admin/payments"
	if got := strings.Join(paths, ","); got != want {
		t.Errorf("paths: got %q, want %q", got, want)
	}
}

func TestCreatorPasses_DecodesNestedRefs(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"creatorPasses":[
			{"creator":{"username":"maker"},"subscriber":"64f0c0ffee","price":"9.99","status":"active"}
		]}`)
	})

	passes, err := c.CreatorPasses(context.Background(), "t", "maker")
	if err != nil {
		t.Fatalf("CreatorPasses: %v", err)
	}
	if len(passes) != 1 {
		t.Fatalf("expected 1 pass, got %d", len(passes))
	}
	p := passes[0]
	if p.Creator == nil || p.Creator.Username != "maker" {
		t.Errorf("creator: got %+v", p.Creator)
	}
	if p.Subscriber == nil || p.Subscriber.ID != "64f0c0ffee" {
		t.Errorf("subscriber: got %+v", p.Subscriber)
	}
	if p.Price != 9.99 {
		t.Errorf("price: got %v", p.Price)
	}
}

func TestFinancialOverview_SendsTimeframe(t *testing.T) {
	for _, tf := range adminapi.Timeframes {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("timeframe"); got != string(tf) {
				t.Errorf("timeframe: got %q, want %q", got, tf)
			}
			writeJSON(w, http.StatusOK, `{"success":true,"financialData":{"totalRevenue":100},"timeframe":"`+string(tf)+`"}`)
		})

		ov, err := c.FinancialOverview(context.Background(), "t", tf)
		if err != nil {
			t.Fatalf("FinancialOverview(%s): %v", tf, err)
		}
		if ov.Timeframe != tf {
			t.Errorf("timeframe: got %q, want %q", ov.Timeframe, tf)
		}
		if ov.Data.TotalRevenue != 100 {
			t.Errorf("revenue: got %v", ov.Data.TotalRevenue)
		}
	}
}

func TestFinancialOverview_UnknownEchoKeepsRequested(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"financialData":{},"timeframe":"forever"}`)
	})

	ov, err := c.FinancialOverview(context.Background(), "t", adminapi.Timeframe30Days)
	if err != nil {
		t.Fatalf("FinancialOverview: %v", err)
	}
	if ov.Timeframe != adminapi.Timeframe30Days {
		t.Errorf("timeframe: got %q", ov.Timeframe)
	}
}

func TestPing(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("404 should count as reachable: %v", err)
	}

	down := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := down.Ping(context.Background()); err == nil {
		t.Error("503 should not count as reachable")
	}
}
