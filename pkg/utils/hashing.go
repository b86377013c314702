package utils

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PasswordHasher turns a supplied password into its stored form and checks a
// login attempt against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, supplied string) bool
}

func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", PasswordModePlain:
		return plainHasher{}, nil
	case PasswordModeBcrypt:
		return bcryptHasher{cost: 10}, nil
	default:
		return nil, fmt.Errorf("unsupported password hashing mode %q", mode)
	}
}

// plainHasher keeps the password as supplied and compares by string equality.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

type bcryptHasher struct {
	cost int
}

func (b bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	return string(bytes), err
}

func (b bcryptHasher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
