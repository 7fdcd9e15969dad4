// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/resources"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/timeouts"
	"github.com/dalemusser/adminconsole/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend client
// is built, but before the HTTP handler is built. It loads the shared
// templates and applies the display and timeout settings.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{Medium: appCfg.APITimeout})
	format.Configure(appCfg.Locale, appCfg.CurrencySymbol)
	viewdata.Init(appCfg.SiteName, appCfg.FooterHTML)

	logger.Info("admin console configured",
		zap.String("site_name", viewdata.SiteName()),
		zap.Duration("api_timeout", timeouts.Medium()),
		zap.String("audit_log", appCfg.AuditLog))
	return nil
}
