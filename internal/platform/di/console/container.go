// internal/platform/di/console/container.go
package console

import (
	"context"
	"errors"
	"log"
	"net/http"

	consolehttp "voltmart/internal/adapters/in/http/console"
	consoleHandler "voltmart/internal/adapters/in/http/console/handler"
	httpmw "voltmart/internal/adapters/in/http/middleware"
	shared "voltmart/internal/platform/di/shared"
)

// Container wires the operator console: catalog write-through handlers behind
// required auth.
type Container struct {
	infra *shared.Infra

	requireAuth *httpmw.RequireAuth
	deps        consolehttp.Deps
}

// NewContainer builds the console container on shared infra.
func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil {
		return nil, errors.New("di.console: infra is nil")
	}
	if infra.Commerce == nil {
		return nil, errors.New("di.console: commerce client is nil")
	}
	if infra.FirebaseAuth == nil {
		// the console is useless without operator auth, unlike the storefront
		return nil, errors.New("di.console: firebase auth is required")
	}

	c := &Container{infra: infra}

	// auth is enforced per route group so /healthz stays open
	c.requireAuth = &httpmw.RequireAuth{FirebaseAuth: infra.FirebaseAuth}
	c.deps = consolehttp.Deps{
		Product:  c.requireAuth.Handler(consoleHandler.NewProductAdminHandler(infra.Commerce)),
		Category: c.requireAuth.Handler(consoleHandler.NewCategoryAdminHandler(infra.Commerce)),
	}

	log.Printf("[di.console] container initialized")
	return c, nil
}

// Register registers console routes onto mux.
func Register(mux *http.ServeMux, c *Container) {
	if mux == nil || c == nil {
		return
	}
	consolehttp.Register(mux, c.deps)
}

// Wrap applies the console middleware chain: recovery outermost, then CORS.
func (c *Container) Wrap(h http.Handler) http.Handler {
	origin := "*"
	if c.infra != nil {
		origin = c.infra.CORSOrigin
	}
	return httpmw.Recover(httpmw.CORS(origin)(h))
}

// Close releases container-owned resources. Shared infra is closed by its
// owner.
func (c *Container) Close() error { return nil }
