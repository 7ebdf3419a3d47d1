package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"zassprint/internal/model"
)

var ErrBadCredentials = errors.New("bad credentials")

// AuthService checks login attempts against the single configured admin
// credential pair. The password is hashed once at construction so every
// comparison goes through bcrypt.
type AuthService struct {
	adminEmail   string
	passwordHash []byte
}

func NewAuthService(adminEmail, adminPassword string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: hash,
	}, nil
}

// Authenticate returns the admin session identity on a credential match and
// ErrBadCredentials on any mismatch, without distinguishing which field was
// wrong.
func (s *AuthService) Authenticate(email, password string) (*model.Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil

	if !emailOK || !passwordOK {
		return nil, ErrBadCredentials
	}

	return &model.Session{
		Name:  "Zass Admin",
		Email: s.adminEmail,
	}, nil
}
