// internal/adapters/in/http/middleware/visitor.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	storefront "voltmart/internal/application/query/storefront"
	"voltmart/internal/domain/i18n"
)

// FirebaseAuthClient is an alias so wiring code can take the middleware type.
type FirebaseAuthClient = fbauth.Client

type ctxKey struct{ name string }

var ctxKeyIdentity = ctxKey{name: "visitorIdentity"}

// Visitor resolves the per-request identity every storefront handler routes
// on:
//
//   - X-Guest-Id: the visitor's guest id (always present for SPA clients)
//   - Authorization: Bearer <ID_TOKEN> (optional)
//   - X-Locale / ?lang: UI language, unknown values fall back to en
//
// A bearer token is verified against Firebase Auth when the client is
// configured. Invalid or absent tokens downgrade to the guest path instead of
// failing the request: the storefront stays browsable while logged out.
type Visitor struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *Visitor) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := storefront.Identity{
			GuestID: strings.TrimSpace(r.Header.Get("X-Guest-Id")),
			Locale:  resolveLocale(r),
		}

		if raw := bearerToken(r); raw != "" {
			if m.FirebaseAuth == nil {
				log.Printf("[visitor] bearer present but firebase auth not configured path=%s", r.URL.Path)
			} else if _, err := m.FirebaseAuth.VerifyIDToken(r.Context(), raw); err != nil {
				log.Printf("[visitor] token rejected path=%s err=%v", r.URL.Path, err)
			} else {
				id.Bearer = raw
			}
		}

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth guards console routes: a verified bearer token is mandatory.
type RequireAuth struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *RequireAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		raw := bearerToken(r)
		if raw == "" {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		id := storefront.Identity{
			Bearer: raw,
			Locale: resolveLocale(r),
		}
		log.Printf("[require_auth] path=%s uid=%s", r.URL.Path, token.UID)

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom returns the identity placed by Visitor or RequireAuth.
func IdentityFrom(r *http.Request) (storefront.Identity, bool) {
	v := r.Context().Value(ctxKeyIdentity)
	if v == nil {
		return storefront.Identity{}, false
	}
	id, ok := v.(storefront.Identity)
	return id, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func resolveLocale(r *http.Request) i18n.Locale {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		return i18n.ParseLocale(v)
	}
	if v := strings.TrimSpace(r.URL.Query().Get("lang")); v != "" {
		return i18n.ParseLocale(v)
	}
	return i18n.DefaultLocale
}
