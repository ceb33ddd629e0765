package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"bookstack/pkg/claims"
	"bookstack/pkg/session"
	"bookstack/pkg/user"
)

var (
	noAuthUrls = map[string]string{
		"/login":    http.MethodPost,
		"/register": http.MethodPost,
	}
)

// CheckJWT gates every route except login/register behind a bearer
// token. The signature and expiry are checked first, then the subject
// is resolved against the credential store so a token for a since
// deleted user is rejected too.
func CheckJWT(tokens *session.Manager, users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			if route == nil {
				http.NotFound(w, r)
				return
			}
			template, err := route.GetPathTemplate()
			if err != nil {
				http.NotFound(w, r)
				return
			}

			if method, ok := noAuthUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				unauthorized(w)
				return
			}

			c, err := tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}

			if _, err := users.FindByUsername(r.Context(), c.Username()); err != nil {
				if errors.Is(err, user.ErrNotFound) {
					unauthorized(w)
					return
				}
				serverError(w)
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
}

func serverError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"internal server error"}`))
}
