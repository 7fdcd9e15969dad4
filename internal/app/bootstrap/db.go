// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
	"github.com/dalemusser/adminconsole/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the Admin API client and the login limiter.
//
// The Admin API is this app's only backend. An unreachable API is logged but
// does not abort startup; /health reports it and section loads show their
// inline error until it comes back.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := adminapi.New(appCfg.APIBaseURL, appCfg.APITimeout, logger)
	if err != nil {
		logger.Error("Admin API client init failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("Admin API not reachable at startup",
			zap.String("api_base_url", client.BaseURL()),
			zap.Error(err))
	} else {
		logger.Info("Admin API reachable", zap.String("api_base_url", client.BaseURL()))
	}

	return DBDeps{
		API:          client,
		LoginLimiter: ratelimit.NewLoginLimiter(appCfg.LoginRateLimit, appCfg.LoginRateWindow, appCfg.TrustProxyHeaders),
	}, nil
}

// EnsureSchema is a no-op: the admin console owns no data.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
