// internal/adapters/in/http/console/router.go
package httpin

import (
	"log"
	"net/http"
)

// Deps is the operator-facing handler set. Every route sits behind the
// required-auth middleware, applied by the caller.
type Deps struct {
	Product  http.Handler
	Category http.Handler
}

func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[console.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers console routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	handleSafe(mux, "/console/products", deps.Product, "ProductAdmin")
	handleSafe(mux, "/console/products/", deps.Product, "ProductAdmin")

	handleSafe(mux, "/console/categories", deps.Category, "CategoryAdmin")
	handleSafe(mux, "/console/categories/", deps.Category, "CategoryAdmin")
}
