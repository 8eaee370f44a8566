// internal/adapters/in/http/storefront/handler/image_handler.go
package storefrontHandler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"voltmart/internal/infra/imagecache"
)

// ImageHandler serves product images through the cache-first pipeline:
// memory, then the persistent store, then the commerce API.
//
//	GET /storefront/images/{id}
type ImageHandler struct {
	cache *imagecache.Cache
}

func NewImageHandler(cache *imagecache.Cache) http.Handler {
	return &ImageHandler{cache: cache}
}

func (h *ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		writeErr(w, http.StatusInternalServerError, "image handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	id, err := strconv.ParseInt(path[strings.LastIndex(path, "/")+1:], 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "image id is required")
		return
	}

	img, err := h.cache.Get(r.Context(), id)
	if err != nil {
		log.Printf("[image_handler] fetch failed id=%d err=%v", id, err)
		writeErr(w, http.StatusBadGateway, "image unavailable")
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
