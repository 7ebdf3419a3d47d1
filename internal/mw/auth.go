package mw

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"zassprint/internal/model"
)

type contextKey string

// SessionCtxKey carries the authenticated admin identity.
const SessionCtxKey contextKey = "admin_session"

// SessionName is the admin session cookie name.
const SessionName = "zass_admin"

// AdminOnly rejects requests without a valid admin session cookie before any
// handler work happens.
func AdminOnly(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			authenticated, _ := session.Values["authenticated"].(bool)
			if !authenticated {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			name, _ := session.Values["name"].(string)
			email, _ := session.Values["email"].(string)

			ctx := context.WithValue(r.Context(), SessionCtxKey, model.Session{
				Name:  name,
				Email: email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
