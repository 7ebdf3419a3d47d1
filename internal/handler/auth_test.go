package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"

	"zassprint/internal/mw"
	"zassprint/internal/service"
)

func newTestAuth(t *testing.T) (*service.AuthService, sessions.Store) {
	t.Helper()
	svc, err := service.NewAuthService("admin@zassprint.com", "supersecret")
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc, sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
}

func TestLoginHandler(t *testing.T) {
	authSvc, store := newTestAuth(t)
	h := LoginHandler(authSvc, store)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "correct credentials",
			body:       `{"email":"admin@zassprint.com","password":"supersecret"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"email":"admin@zassprint.com","password":"wrongpass"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong email",
			body:       `{"email":"intruder@zassprint.com","password":"supersecret"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email","password":"supersecret"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "password too short",
			body:       `{"email":"admin@zassprint.com","password":"short"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			gotCookie := strings.Contains(rec.Header().Get("Set-Cookie"), mw.SessionName)
			if tt.wantStatus == http.StatusOK && !gotCookie {
				t.Errorf("successful login did not set a %s cookie", mw.SessionName)
			}
			if tt.wantStatus == http.StatusUnauthorized && gotCookie {
				t.Errorf("failed login set a session cookie")
			}
		})
	}
}

func TestLoginHandler_UnauthorizedMessage(t *testing.T) {
	authSvc, store := newTestAuth(t)
	h := LoginHandler(authSvc, store)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@zassprint.com","password":"wrongpass"}`))
	rec := httptest.NewRecorder()

	h(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "Bad credentials" {
		t.Errorf("body = %q, want %q", got, "Bad credentials")
	}
}
