// internal/adapters/in/http/storefront/router.go
package storefront

import (
	"log"
	"net/http"
)

// Deps is the buyer-facing handler set.
type Deps struct {
	Cart     http.Handler
	Catalog  http.Handler
	Category http.Handler
	Checkout http.Handler
	Image    http.Handler
	Session  http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so Cloud Run
// won't crash).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[storefront.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers buyer-facing routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// cart
	handleSafe(mux, "/storefront/cart", deps.Cart, "Cart")
	handleSafe(mux, "/storefront/cart/", deps.Cart, "Cart")

	// catalog
	handleSafe(mux, "/storefront/products", deps.Catalog, "Catalog")
	handleSafe(mux, "/storefront/products/", deps.Catalog, "Catalog")
	handleSafe(mux, "/storefront/price-range", deps.Catalog, "Catalog(price-range)")

	// categories
	handleSafe(mux, "/storefront/categories", deps.Category, "Category")
	handleSafe(mux, "/storefront/categories/", deps.Category, "Category")

	// checkout
	handleSafe(mux, "/storefront/checkout", deps.Checkout, "Checkout")

	// images
	handleSafe(mux, "/storefront/images/", deps.Image, "Image")

	// session
	handleSafe(mux, "/storefront/session", deps.Session, "Session")
	handleSafe(mux, "/storefront/session/", deps.Session, "Session")
}
