// internal/adapters/in/http/storefront/handler/catalog_handler.go
package storefrontHandler

import (
	"log"
	"net/http"
	"strings"

	"voltmart/internal/adapters/in/http/middleware"
	storefront "voltmart/internal/application/query/storefront"
	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/i18n"
)

// CatalogHandler serves product listing reads. The composite filter state
// rides entirely in the query string, so a listing URL is shareable and
// reproduces the same page.
//
//	GET /storefront/products?search=&categories=&minPrice=&maxPrice=&sort=&page=
//	GET /storefront/products/popular
//	GET /storefront/price-range
type CatalogHandler struct {
	q *storefront.CatalogQuery
}

func NewCatalogHandler(q *storefront.CatalogQuery) http.Handler {
	return &CatalogHandler{q: q}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.q == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	locale := i18n.DefaultLocale
	if id, ok := middleware.IdentityFrom(r); ok {
		locale = id.Locale
	}

	path := strings.TrimRight(r.URL.Path, "/")
	switch {
	case strings.HasSuffix(path, "/products/popular"):
		items, err := h.q.Popular(r.Context(), locale)
		if err != nil {
			log.Printf("[catalog_handler] popular failed err=%v", err)
			writeDomainErr(w, err, locale)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case strings.HasSuffix(path, "/products"):
		q := catalog.DecodeQuery(r.URL.Query())
		page, err := h.q.Products(r.Context(), q, locale)
		if err != nil {
			log.Printf("[catalog_handler] products failed query=%q err=%v", r.URL.RawQuery, err)
			writeDomainErr(w, err, locale)
			return
		}
		writeJSON(w, http.StatusOK, page)

	case strings.HasSuffix(path, "/price-range"):
		rng, err := h.q.SliderRange(r.Context())
		if err != nil {
			log.Printf("[catalog_handler] price range failed err=%v", err)
			writeDomainErr(w, err, locale)
			return
		}
		writeJSON(w, http.StatusOK, rng)

	default:
		notFound(w)
	}
}

// CategoryHandler serves the read-only category tree.
//
//	GET /storefront/categories
type CategoryHandler struct {
	q *storefront.CatalogQuery
}

func NewCategoryHandler(q *storefront.CatalogQuery) http.Handler {
	return &CategoryHandler{q: q}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.q == nil {
		writeErr(w, http.StatusInternalServerError, "category handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	locale := i18n.DefaultLocale
	if id, ok := middleware.IdentityFrom(r); ok {
		locale = id.Locale
	}

	tree, err := h.q.CategoryTree(r.Context())
	if err != nil {
		log.Printf("[category_handler] tree failed err=%v", err)
		writeDomainErr(w, err, locale)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}
