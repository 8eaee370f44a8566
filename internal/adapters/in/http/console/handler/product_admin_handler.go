// internal/adapters/in/http/console/handler/product_admin_handler.go
package consoleHandler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"voltmart/internal/adapters/out/commerce"
	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/product"
)

// ProductAdminGateway is the slice of the commerce client the console's
// product management needs.
type ProductAdminGateway interface {
	SearchProducts(ctx context.Context, q catalog.Query) (product.Page, error)
	CreateProduct(ctx context.Context, bearer string, p commerce.AdminProduct) error
	UpdateProduct(ctx context.Context, bearer string, p commerce.AdminProduct) error
	DeleteProduct(ctx context.Context, bearer string, id int64) error
}

// ProductAdminHandler manages catalog products from the console. Writes are
// proxied to the commerce API with the operator's bearer token.
//
//	GET    /console/products?search=&page=
//	POST   /console/products
//	PUT    /console/products
//	DELETE /console/products/{id}
type ProductAdminHandler struct {
	gateway ProductAdminGateway
}

func NewProductAdminHandler(gateway ProductAdminGateway) http.Handler {
	return &ProductAdminHandler{gateway: gateway}
}

func (h *ProductAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[product_admin_handler] method=%s path=%s", r.Method, r.URL.Path)

	if h.gateway == nil {
		writeAdminErr(w, http.StatusInternalServerError, "product admin handler is not configured")
		return
	}

	bearer := adminBearer(r)
	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/products"):
		q := catalog.DecodeQuery(r.URL.Query())
		page, err := h.gateway.SearchProducts(r.Context(), q)
		if err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, page)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/products"):
		var p commerce.AdminProduct
		if err := readAdminJSON(r, &p); err != nil {
			writeAdminErr(w, http.StatusBadRequest, "invalid body")
			return
		}
		if err := h.gateway.CreateProduct(r.Context(), bearer, p); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusCreated, map[string]string{"status": "created"})

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/products"):
		var p commerce.AdminProduct
		if err := readAdminJSON(r, &p); err != nil {
			writeAdminErr(w, http.StatusBadRequest, "invalid body")
			return
		}
		if p.ID <= 0 {
			writeAdminErr(w, http.StatusBadRequest, "product id is required")
			return
		}
		if err := h.gateway.UpdateProduct(r.Context(), bearer, p); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case r.Method == http.MethodDelete && strings.Contains(path, "/products/"):
		id := adminPathID(path)
		if id <= 0 {
			writeAdminErr(w, http.StatusBadRequest, "product id is required")
			return
		}
		if err := h.gateway.DeleteProduct(r.Context(), bearer, id); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		writeAdminErr(w, http.StatusNotFound, "not_found")
	}
}
