// internal/adapters/in/http/console/handler/category_admin_handler.go
package consoleHandler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"voltmart/internal/adapters/out/commerce"
	"voltmart/internal/domain/catalog"
)

// CategoryAdminGateway is the slice of the commerce client the console's
// category management needs.
type CategoryAdminGateway interface {
	Categories(ctx context.Context) ([]catalog.CategoryNode, error)
	CreateCategory(ctx context.Context, bearer string, cat commerce.AdminCategory) error
	UpdateCategory(ctx context.Context, bearer string, cat commerce.AdminCategory) error
	DeleteCategory(ctx context.Context, bearer string, id int64) error
}

// CategoryAdminHandler manages the category tree from the console.
//
//	GET    /console/categories
//	POST   /console/categories
//	PUT    /console/categories
//	DELETE /console/categories/{id}
type CategoryAdminHandler struct {
	gateway CategoryAdminGateway
}

func NewCategoryAdminHandler(gateway CategoryAdminGateway) http.Handler {
	return &CategoryAdminHandler{gateway: gateway}
}

func (h *CategoryAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[category_admin_handler] method=%s path=%s", r.Method, r.URL.Path)

	if h.gateway == nil {
		writeAdminErr(w, http.StatusInternalServerError, "category admin handler is not configured")
		return
	}

	bearer := adminBearer(r)
	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/categories"):
		roots, err := h.gateway.Categories(r.Context())
		if err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, roots)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/categories"):
		var cat commerce.AdminCategory
		if err := readAdminJSON(r, &cat); err != nil {
			writeAdminErr(w, http.StatusBadRequest, "invalid body")
			return
		}
		if strings.TrimSpace(cat.Name) == "" {
			writeAdminErr(w, http.StatusBadRequest, "category name is required")
			return
		}
		if err := h.gateway.CreateCategory(r.Context(), bearer, cat); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusCreated, map[string]string{"status": "created"})

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/categories"):
		var cat commerce.AdminCategory
		if err := readAdminJSON(r, &cat); err != nil {
			writeAdminErr(w, http.StatusBadRequest, "invalid body")
			return
		}
		if cat.ID <= 0 {
			writeAdminErr(w, http.StatusBadRequest, "category id is required")
			return
		}
		if err := h.gateway.UpdateCategory(r.Context(), bearer, cat); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case r.Method == http.MethodDelete && strings.Contains(path, "/categories/"):
		id := adminPathID(path)
		if id <= 0 {
			writeAdminErr(w, http.StatusBadRequest, "category id is required")
			return
		}
		if err := h.gateway.DeleteCategory(r.Context(), bearer, id); err != nil {
			writeAdminGatewayErr(w, err)
			return
		}
		writeAdminJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		writeAdminErr(w, http.StatusNotFound, "not_found")
	}
}
