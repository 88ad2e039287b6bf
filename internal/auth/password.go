package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const PasswordMinLen = 8

func HashPassword(plain string) (string, error) {
	if len(plain) < PasswordMinLen {
		return "", fmt.Errorf("password must be at least %d characters", PasswordMinLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
