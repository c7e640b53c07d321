package auth

import (
	"context"
	"net/http"

	"theatre-booking/internal/models"
)

type contextKey string

const sessionKey contextKey = "session"

// UserDirectory looks up users for the admin re-check.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// FromContext returns the session placed by the middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok
}

// RequireUser redirects unauthenticated requests to the login page and puts
// the session on the request context otherwise.
func RequireUser(sessions *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Read(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin routes. The admin flag cached in the cookie is
// not trusted: the authoritative flag is re-read from the store on every
// request, so revoking admin rights takes effect mid-session.
func RequireAdmin(sessions *Sessions, users UserDirectory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Read(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			user, err := users.GetUserByID(r.Context(), sess.UserID)
			if err != nil || !user.IsAdmin {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			sess.IsAdmin = true
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
