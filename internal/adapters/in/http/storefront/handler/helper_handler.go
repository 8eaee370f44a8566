// internal/adapters/in/http/storefront/handler/helper_handler.go
package storefrontHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"voltmart/internal/adapters/out/commerce"
	usecase "voltmart/internal/application/usecase"
	"voltmart/internal/domain/i18n"
)

// ============================================================
// HTTP helpers
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": strings.TrimSpace(msg)})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func notFound(w http.ResponseWriter) {
	writeErr(w, http.StatusNotFound, "not found")
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
}

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func parseInt64Default(s string, def int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// writeDomainErr maps layered errors to HTTP statuses. Remote failures keep
// the detail in logs and surface the localized generic message.
func writeDomainErr(w http.ResponseWriter, err error, locale i18n.Locale) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation_failed",
			"fields": ve.Fields,
		})
	case errors.Is(err, usecase.ErrEmptyCart):
		writeErr(w, http.StatusConflict, "cart is empty")
	case errors.Is(err, usecase.ErrCartLineNotFound):
		writeErr(w, http.StatusNotFound, "cart line not found")
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrSessionInvalidArgument),
		errors.Is(err, usecase.ErrCheckoutInvalidArgument):
		badRequest(w, "invalid argument")
	case errors.Is(err, commerce.ErrRemote), errors.Is(err, commerce.ErrMalformed):
		writeErr(w, http.StatusBadGateway, i18n.RemoteFailure(locale))
	default:
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}
