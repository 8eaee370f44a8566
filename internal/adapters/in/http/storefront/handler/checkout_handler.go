// internal/adapters/in/http/storefront/handler/checkout_handler.go
package storefrontHandler

import (
	"log"
	"net/http"

	"voltmart/internal/adapters/in/http/middleware"
	usecase "voltmart/internal/application/usecase"
	"voltmart/internal/domain/reservation"
)

// CheckoutHandler submits the order form. Guests send their local cart; for
// authenticated visitors the commerce API consumes the account cart
// server-side.
//
//	POST /storefront/checkout
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

type checkoutRequest struct {
	Customer reservation.Customer `json:"customer"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	id, ok := middleware.IdentityFrom(r)
	if !ok || (id.GuestID == "" && !id.Authenticated()) {
		badRequest(w, "guest id is required")
		return
	}

	var req checkoutRequest
	if err := readJSON(r, &req); err != nil {
		badRequest(w, "invalid body")
		return
	}

	var (
		res reservation.Result
		err error
	)
	if id.Authenticated() {
		res, err = h.uc.Account(r.Context(), id.Bearer, req.Customer, id.Locale)
	} else {
		res, err = h.uc.Guest(r.Context(), id.GuestID, req.Customer, id.Locale)
	}
	if err != nil {
		log.Printf("[checkout_handler] checkout failed guestId=%q authenticated=%t err=%v",
			id.GuestID, id.Authenticated(), err)
		writeDomainErr(w, err, id.Locale)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}
