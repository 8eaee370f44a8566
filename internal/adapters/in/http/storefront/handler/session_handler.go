// internal/adapters/in/http/storefront/handler/session_handler.go
package storefrontHandler

import (
	"log"
	"net/http"
	"strings"

	"voltmart/internal/adapters/in/http/middleware"
	usecase "voltmart/internal/application/usecase"
	sessdom "voltmart/internal/domain/session"
)

// SessionHandler serves the explicit visitor state: tokens, login flag and
// UI language.
//
//	GET  /storefront/session
//	PUT  /storefront/session/language   {language}
//	POST /storefront/session/login      {accessToken, refreshToken}
//	POST /storefront/session/logout
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) http.Handler {
	return &SessionHandler{uc: uc}
}

type sessionView struct {
	GuestID  string `json:"guestId"`
	LoggedIn bool   `json:"loggedIn"`
	Language string `json:"language"`
}

func toSessionView(s *sessdom.Session) sessionView {
	// tokens never leave the service in the session view
	return sessionView{
		GuestID:  s.GuestID,
		LoggedIn: s.LoggedIn,
		Language: string(s.Language),
	}
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "session handler is not configured")
		return
	}

	id, ok := middleware.IdentityFrom(r)
	if !ok || id.GuestID == "" {
		badRequest(w, "guest id is required")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/session"):
		s, err := h.uc.Get(r.Context(), id.GuestID)
		if err != nil {
			log.Printf("[session_handler] get failed guestId=%q err=%v", id.GuestID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, toSessionView(s))

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/session/language"):
		var req struct {
			Language string `json:"language"`
		}
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid body")
			return
		}
		s, err := h.uc.SetLanguage(r.Context(), id.GuestID, req.Language)
		if err != nil {
			log.Printf("[session_handler] set language failed guestId=%q err=%v", id.GuestID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, toSessionView(s))

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/session/login"):
		var req struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		if err := readJSON(r, &req); err != nil {
			badRequest(w, "invalid body")
			return
		}
		s, err := h.uc.Login(r.Context(), id.GuestID, req.AccessToken, req.RefreshToken)
		if err != nil {
			log.Printf("[session_handler] login failed guestId=%q err=%v", id.GuestID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, toSessionView(s))

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/session/logout"):
		s, err := h.uc.Logout(r.Context(), id.GuestID)
		if err != nil {
			log.Printf("[session_handler] logout failed guestId=%q err=%v", id.GuestID, err)
			writeDomainErr(w, err, id.Locale)
			return
		}
		writeJSON(w, http.StatusOK, toSessionView(s))

	default:
		notFound(w)
	}
}
