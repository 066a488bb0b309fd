package auth

import (
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/utils"
)

// sessionCookie builds the session cookie. Secure is only required in
// production so local development over plain HTTP still works.
func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}
