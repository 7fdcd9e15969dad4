// internal/app/features/creatorpasses/handler.go
package creatorpasses

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"go.uber.org/zap"
)

// API lists creator passes.
type API interface {
	CreatorPasses(ctx context.Context, token, search string) ([]adminapi.CreatorPass, error)
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
