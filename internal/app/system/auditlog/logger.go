// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Event types recorded for the admin session lifecycle.
const (
	EventLoginSuccess   = "login_success"
	EventLoginFailure   = "login_failure"
	EventLoginThrottled = "login_throttled"
	EventLogout         = "logout"
	EventSessionExpired = "session_expired"
)

// Modes accepted by Config.Mode.
const (
	ModeLog = "log" // structured log lines tagged audit=true
	ModeOff = "off" // disabled
)

// Config holds audit logging configuration.
type Config struct {
	Mode string
	// TrustProxy records the X-Forwarded-For / X-Real-IP address instead of
	// the peer address. Enable only behind a reverse proxy that sets them.
	TrustProxy bool
}

// Logger records admin session events as structured zap entries.
// A nil *Logger is valid and records nothing.
type Logger struct {
	zapLog     *zap.Logger
	enabled    bool
	trustProxy bool
}

// New creates an audit Logger.
func New(zapLog *zap.Logger, cfg Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		zapLog:     zapLog.Named("audit"),
		enabled:    strings.ToLower(strings.TrimSpace(cfg.Mode)) != ModeOff,
		trustProxy: cfg.TrustProxy,
	}
}

// LoginSuccess records a successful sign-in.
func (l *Logger) LoginSuccess(r *http.Request, username string) {
	l.log(r, EventLoginSuccess, true, zap.String("username", username))
}

// LoginFailure records a rejected sign-in with the reason shown to the user.
func (l *Logger) LoginFailure(r *http.Request, username, reason string) {
	l.log(r, EventLoginFailure, false,
		zap.String("username", username),
		zap.String("failure_reason", reason))
}

// LoginThrottled records a sign-in refused by the rate limiter.
func (l *Logger) LoginThrottled(r *http.Request, username string) {
	l.log(r, EventLoginThrottled, false, zap.String("username", username))
}

// Logout records an explicit sign-out.
func (l *Logger) Logout(r *http.Request, admin string) {
	l.log(r, EventLogout, true, zap.String("admin", admin))
}

// SessionExpired records a session ended by a 401 from the Admin API.
func (l *Logger) SessionExpired(r *http.Request, admin, section string) {
	l.log(r, EventSessionExpired, true,
		zap.String("admin", admin),
		zap.String("section", section))
}

func (l *Logger) log(r *http.Request, eventType string, success bool, extra ...zap.Field) {
	if l == nil || !l.enabled {
		return
	}
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", eventType),
		zap.Bool("success", success),
		zap.String("ip", ratelimit.ClientIP(r, l.trustProxy)),
		zap.String("user_agent", r.UserAgent()),
	}
	fields = append(fields, extra...)
	l.zapLog.Info("audit event", fields...)
}
