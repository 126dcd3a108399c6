// Package credential implements password hashing and verification, plus the
// format check that distinguishes migrated bcrypt hashes from legacy
// plaintext-equivalent credentials still awaiting migration-on-login.
package credential

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of the plaintext password.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
func Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// IsHashed recognizes the bcrypt credential-format markers. A stored value
// without one is treated as legacy plaintext.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
