package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/utils"
)

// IdentityFetcher resolves a verified session identifier to an identity.
// auth.Service implements it; tests use mocks.
type IdentityFetcher interface {
	IdentityBySession(sessionID string) (utils.Identity, error)
}

// Identity resolves the session cookie to an identity exactly once per
// request and stores it in the context for downstream guards and handlers.
// A missing cookie, bad signature, expired session, or deleted user all
// degrade to an anonymous request. Anything else from the fetcher is a real
// failure (the database is down, not the session) and gets a 500, so an
// outage does not masquerade as a logged-out user.
func Identity(fetcher IdentityFetcher, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, ok := utils.ParseSessionCookie(cookie.Value, secret)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := fetcher.IdentityBySession(sessionID)
			if errors.Is(err, utils.ErrNoIdentity) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.Printf("[middleware] identity resolution: %v", err)
				utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextIdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth short-circuits anonymous requests. It only consults the
// context; identity resolution already happened in Identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin implies RequireAuth. A logged-in non-admin gets 403, distinct
// from the anonymous 401.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if ident.Role != utils.RoleAdmin {
			utils.RespondError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

var allowed = map[string]struct{}{
	"http://localhost:5173":              {},
	"http://localhost:5174":              {},
	"https://bellacucina.github.io":      {},
	"https://www.bellacucina.restaurant": {},
	"https://bellacucina.restaurant":     {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it's on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
