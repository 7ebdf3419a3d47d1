package service

import (
	"errors"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	svc, err := NewAuthService("admin@zassprint.com", "supersecret")
	if err != nil {
		t.Fatalf("NewAuthService returned error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"correct credentials", "admin@zassprint.com", "supersecret", false},
		{"wrong password", "admin@zassprint.com", "supersecreT", true},
		{"wrong email", "someone@else.com", "supersecret", true},
		{"both wrong", "someone@else.com", "guess", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Authenticate(tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrBadCredentials) {
					t.Fatalf("Authenticate() error = %v, want ErrBadCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() error = %v", err)
			}
			if sess.Email != "admin@zassprint.com" {
				t.Errorf("session email = %q", sess.Email)
			}
			if sess.Name == "" {
				t.Errorf("session name is empty")
			}
		})
	}
}
