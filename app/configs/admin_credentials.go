package configs

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultAdminPassword = "admin"

type AdminCredentials struct {
	Username     string
	PasswordHash []byte
}

// LoadAdminCredentials falls back to the bcrypt hash of "admin" when no hash is configured.
func LoadAdminCredentials(env ENV) (AdminCredentials, error) {
	hash := []byte(env.AdminPasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return AdminCredentials{}, fmt.Errorf("failed to hash default admin password: %w", err)
		}
		hash = generated
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return AdminCredentials{}, fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
	}

	return AdminCredentials{Username: env.AdminUsername, PasswordHash: hash}, nil
}
