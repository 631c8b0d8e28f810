package middleware

import (
	"net/http"
)

// SessionCookieName carries the operator's session marker.
const SessionCookieName = "adminSession"

// Session gates the admin surface on the presence of the session marker
// cookie. The marker is a capability flag set by the login handler, not
// a verifiable token: there is no expiry and no per-user identity.
type Session struct {
	secureCookies bool
}

func NewSession(secureCookies bool) *Session {
	return &Session{secureCookies: secureCookies}
}

// AdminOnly rejects requests without the session marker.
func (s *Session) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Not authorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetMarker writes the session cookie after a successful authentication.
func (s *Session) SetMarker(w http.ResponseWriter, marker string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    marker,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearMarker deauthenticates by expiring the cookie.
func (s *Session) ClearMarker(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
