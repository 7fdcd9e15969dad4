// internal/app/features/users/handler.go
package users

import (
	"context"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"go.uber.org/zap"
)

// API lists platform accounts.
type API interface {
	Users(ctx context.Context, token, search string) ([]adminapi.User, error)
	UsersByDate(ctx context.Context, token, date string) ([]adminapi.User, error)
}

// Handler serves the users and users-by-date sections.
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
