// internal/app/features/overview/handler.go
package overview

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"go.uber.org/zap"
)

// API fetches the financial overview.
type API interface {
	FinancialOverview(ctx context.Context, token string, tf adminapi.Timeframe) (adminapi.Overview, error)
}

type Handler struct {
	API    API
	Loader *loader.Loader
	Log    *zap.Logger
}

func NewHandler(api API, ld *loader.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		Loader: ld,
		Log:    logger,
	}
}
