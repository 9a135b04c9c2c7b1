package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether a presented admin password is correct.
type Verifier interface {
	Verify(password string) bool
}

// HashPassword hashes password with bcrypt's default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BcryptVerifier checks passwords against a single stored bcrypt hash.
type BcryptVerifier struct {
	hash string
}

func NewBcryptVerifier(hash string) (*BcryptVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.New("admin password hash is not a bcrypt hash")
	}
	return &BcryptVerifier{hash: hash}, nil
}

func (v *BcryptVerifier) Verify(password string) bool {
	if password == "" {
		return false
	}
	return CheckPasswordHash(password, v.hash)
}
