// internal/adapters/in/http/storefront/handler/cart_handler.go
package storefrontHandler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"voltmart/internal/adapters/in/http/middleware"
	storefront "voltmart/internal/application/query/storefront"
)

// CartHandler serves the unified cart view and its mutations. Routing between
// the guest store and the account cart happens inside the reconciler; the
// endpoints are identical either way.
//
//	GET    /storefront/cart
//	DELETE /storefront/cart
//	POST   /storefront/cart/items        {productId, qty}
//	PUT    /storefront/cart/items        {productId, qty}
//	DELETE /storefront/cart/items/{id}
type CartHandler struct {
	rec *storefront.CartReconciler
}

func NewCartHandler(rec *storefront.CartReconciler) http.Handler {
	return &CartHandler{rec: rec}
}

type cartItemRequest struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	if h.rec == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	id, ok := middleware.IdentityFrom(r)
	if !ok || (id.GuestID == "" && !id.Authenticated()) {
		badRequest(w, "guest id is required")
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/cart"):
		view, err := h.rec.View(r.Context(), id)
		if err != nil {
			log.Printf("[cart_handler] view failed guestId=%q err=%v elapsed=%s", id.GuestID, err, time.Since(start))
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case r.Method == http.MethodDelete && strings.HasSuffix(path, "/cart"):
		view, err := h.rec.Clear(r.Context(), id)
		if err != nil {
			log.Printf("[cart_handler] clear failed guestId=%q err=%v", id.GuestID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/cart/items"):
		var req cartItemRequest
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid body")
			return
		}
		view, err := h.rec.Add(r.Context(), id, req.ProductID, req.Qty)
		if err != nil {
			log.Printf("[cart_handler] add failed guestId=%q productId=%d err=%v", id.GuestID, req.ProductID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/cart/items"):
		var req cartItemRequest
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid body")
			return
		}
		view, err := h.rec.SetQty(r.Context(), id, req.ProductID, req.Qty)
		if err != nil {
			log.Printf("[cart_handler] set qty failed guestId=%q productId=%d err=%v", id.GuestID, req.ProductID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case r.Method == http.MethodDelete && strings.Contains(path, "/cart/items/"):
		pid := parseInt64Default(path[strings.LastIndex(path, "/")+1:], 0)
		if pid <= 0 {
			badRequest(w, "productId is required")
			return
		}
		view, err := h.rec.Remove(r.Context(), id, pid)
		if err != nil {
			log.Printf("[cart_handler] remove failed guestId=%q productId=%d err=%v", id.GuestID, pid, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, view)

	default:
		notFound(w)
	}
}
