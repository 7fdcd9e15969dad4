// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// devSessionKey is the default signing key. It is rejected in production.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the admin console.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: ADMINCONSOLE_API_BASE_URL, ADMINCONSOLE_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:5000", Desc: "Admin API base URL"},
	{Name: "api_timeout", Default: "15s", Desc: "Timeout for a single Admin API section load (e.g., 15s, 1m)"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "adminconsole-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime"},

	// CSRF
	{Name: "csrf_key", Default: "", Desc: "32-byte CSRF key (blank generates one at startup)"},

	// Login throttling
	{Name: "login_rate_limit", Default: 10, Desc: "Login attempts allowed per client within login_rate_window"},
	{Name: "login_rate_window", Default: "1m", Desc: "Login rate limit window"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Take the client IP from X-Forwarded-For/X-Real-IP (enable only behind a reverse proxy)"},

	// Audit logging
	{Name: "audit_log", Default: "log", Desc: "Audit event logging: 'log' or 'off'"},

	// Display
	{Name: "site_name", Default: "Admin Console", Desc: "Site name shown in titles and the header"},
	{Name: "footer_html", Default: "", Desc: "Footer HTML (sanitized)"},
	{Name: "locale", Default: "en", Desc: "Locale for number formatting"},
	{Name: "currency_symbol", Default: "$", Desc: "Currency symbol for amounts without a currency code"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ADMINCONSOLE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ADMINCONSOLE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: strings.TrimRight(strings.TrimSpace(appValues.String("api_base_url")), "/"),
		APITimeout: appValues.Duration("api_timeout", 15*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		LoginRateLimit:    appValues.Int("login_rate_limit"),
		LoginRateWindow:   appValues.Duration("login_rate_window", time.Minute),
		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		AuditLog: strings.ToLower(strings.TrimSpace(appValues.String("audit_log"))),

		SiteName:       appValues.String("site_name"),
		FooterHTML:     appValues.String("footer_html"),
		Locale:         appValues.String("locale"),
		CurrencySymbol: appValues.String("currency_symbol"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAPIBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid Admin API base URL", zap.String("api_base_url", appCfg.APIBaseURL), zap.Error(err))
		return fmt.Errorf("invalid api_base_url: %w", err)
	}

	if strings.TrimSpace(appCfg.SessionKey) == "" {
		return fmt.Errorf("session_key must be set")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}

	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}

	if appCfg.LoginRateLimit <= 0 {
		return fmt.Errorf("login_rate_limit must be positive, got %d", appCfg.LoginRateLimit)
	}
	if appCfg.LoginRateWindow <= 0 {
		return fmt.Errorf("login_rate_window must be positive")
	}

	switch appCfg.AuditLog {
	case auditlog.ModeLog, auditlog.ModeOff:
	default:
		return fmt.Errorf("audit_log must be 'log' or 'off', got %q", appCfg.AuditLog)
	}

	return nil
}

// validateAPIBaseURL requires an absolute http or https URL with a host.
func validateAPIBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
