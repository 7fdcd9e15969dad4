package testutil

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"go.uber.org/zap"
)

// SessionName is the cookie name used by NewSessionManager.
const SessionName = "adminconsole-test"

// NewSessionManager builds an insecure cookie session manager for tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", SessionName, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

// ErrorMessages collects the inline load errors a Loader rendered.
type ErrorMessages struct {
	mu   sync.Mutex
	msgs []string
}

// All returns the messages rendered so far.
func (e *ErrorMessages) All() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.msgs...)
}

// NewLoader boots the template engine and builds a Loader that renders its
// inline errors through the real snippet, recording each message as well.
func NewLoader(t *testing.T, sm *auth.SessionManager) (*loader.Loader, *ErrorMessages) {
	t.Helper()
	BootTemplates(t)

	msgs := &ErrorMessages{}
	l := loader.New(sm, auditlog.New(zap.NewNop(), auditlog.Config{}), zap.NewNop())
	render := l.RenderError
	l.RenderError = func(w http.ResponseWriter, r *http.Request, msg string) {
		msgs.mu.Lock()
		msgs.msgs = append(msgs.msgs, msg)
		msgs.mu.Unlock()
		render(w, r, msg)
	}
	return l, msgs
}
