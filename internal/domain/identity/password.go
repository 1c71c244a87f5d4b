package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost used for hashes created before the cost
// became configurable.
const DefaultBcryptCost = 10

// bcrypt ignores input past 72 bytes; reject it instead of silently
// truncating.
const maxPasswordBytes = 72

var errPasswordTooLong = errors.New("password must be at most 72 bytes")

func hashPassword(plain string, cost int) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", errPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
