package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
// Callers must not reveal which of the two fields was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks an admin login attempt.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// BcryptVerifier validates a single configured admin account against a
// bcrypt password hash.
type BcryptVerifier struct {
	username     string
	passwordHash []byte
}

func NewBcryptVerifier(username, passwordHash string) *BcryptVerifier {
	return &BcryptVerifier{
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

func (v *BcryptVerifier) Verify(username, password string) error {
	// Run the hash comparison regardless of the username result so both
	// failure modes take the same path.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
