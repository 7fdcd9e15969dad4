// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and request limits. AppConfig carries the Admin API
// endpoint, session and CSRF secrets, and display settings.
type AppConfig struct {
	// Admin API
	APIBaseURL string        // Base URL of the Admin API (e.g., https://api.example.com)
	APITimeout time.Duration // Upper bound for a single section load

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: adminconsole-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime

	// CSRF protection
	CSRFKey string // 32-byte key; blank generates a random key per process

	// Login throttling
	LoginRateLimit  int           // Attempts allowed per client per window
	LoginRateWindow time.Duration // Window length

	// TrustProxyHeaders derives the client IP from X-Forwarded-For/X-Real-IP.
	// Leave off unless a reverse proxy overwrites those headers.
	TrustProxyHeaders bool

	// Audit logging
	AuditLog string // "log" or "off"

	// Display
	SiteName       string // Shown in the page title and header
	FooterHTML     string // Sanitized before rendering
	Locale         string // BCP 47 tag used for digit grouping (e.g., en, de)
	CurrencySymbol string // Prefix for money values without a currency code
}
