// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
)

// DBDeps holds back-end dependencies for the app. The Admin API is the only
// data source; the login limiter lives here so Shutdown can stop its sweeper.
type DBDeps struct {
	API          *adminapi.Client
	LoginLimiter *ratelimit.LoginLimiter
}
