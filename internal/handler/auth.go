package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"zassprint/internal/mw"
	"zassprint/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func LoginHandler(authSvc *service.AuthService, store sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if fe := validateStruct(req); fe != nil {
			writeFieldErrors(w, fe)
			return
		}

		admin, err := authSvc.Authenticate(req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrBadCredentials):
				http.Error(w, "Bad credentials", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// A decode error here means a stale or tampered cookie; a fresh
		// session is returned alongside it, so just overwrite.
		session, _ := store.Get(r, mw.SessionName)
		session.Values["authenticated"] = true
		session.Values["name"] = admin.Name
		session.Values["email"] = admin.Email
		if err := session.Save(r, w); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct{}{})
	}
}

func LogoutHandler(store sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		session, _ := store.Get(r, mw.SessionName)
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct{}{})
	}
}
