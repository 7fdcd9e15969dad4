// internal/app/features/payments/handler.go
package payments

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"go.uber.org/zap"
)

// API lists inbound payments.
type API interface {
	Payments(ctx context.Context, token, date string) ([]adminapi.Payment, error)
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
