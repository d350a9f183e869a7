package services

import (
	"crypto/subtle"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid admin credentials")

type AuthService struct {
	creds configs.AdminCredentials
}

func NewAuthService(creds configs.AdminCredentials) *AuthService {
	return &AuthService{creds: creds}
}

func (s *AuthService) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.creds.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
