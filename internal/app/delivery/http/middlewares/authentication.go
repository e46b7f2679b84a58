package middlewares

import (
	"context"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

const sessionLookupTimeout = 10 * time.Second

// Authenticate guards the JSON API. Requests without a valid session are
// answered with 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession guards the HTML pages. Requests without a valid session are
// redirected to the login page and any stale cookie is cleared.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.LogCustomError(m.Log, err)
			utils.ClearSessionCookie(w, m.InternalConfig.App.SessionCookieName)
			http.Redirect(w, r, constvars.PathLogin, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(r.Context(), sessionLookupTimeout)
	defer cancel()

	return m.SessionService.GetIdentity(ctx, m.sessionToken(r))
}

// sessionToken prefers a bearer token and falls back to the session cookie.
func (m *Middlewares) sessionToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix))
	}

	cookie, err := r.Cookie(m.InternalConfig.App.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
