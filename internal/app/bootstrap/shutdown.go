// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases idle Admin API connections and stops the limiter sweeper.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.LoginLimiter != nil {
		deps.LoginLimiter.Stop()
	}
	if deps.API != nil {
		logger.Info("closing Admin API connections")
		deps.API.CloseIdleConnections()
	}
	return nil
}
