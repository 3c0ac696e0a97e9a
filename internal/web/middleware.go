package web

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type AdminOptions struct {
	// PasswordHash is a bcrypt hash. When empty, admin routes are only
	// reachable in dev mode.
	PasswordHash string
	DevMode      bool
}

// RequireAdmin guards destructive routes with HTTP basic auth. Any user
// name is accepted; only the password is checked.
func RequireAdmin(opts AdminOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.PasswordHash == "" {
				if opts.DevMode {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, http.StatusForbidden, "admin access is not configured")
				return
			}
			_, password, ok := r.BasicAuth()
			if !ok || !checkPassword(opts.PasswordHash, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="swiss-admin"`)
				writeError(w, http.StatusUnauthorized, "admin credentials required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func checkPassword(hash string, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
