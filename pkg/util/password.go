package util

import "golang.org/x/crypto/bcrypt"

// Cost for hashing the admin password. Login happens rarely, so the slower
// factor is acceptable.
const bcryptCost = 12

// HashPassword produces the bcrypt hash to put in ADMIN_PASSWORD_HASH when
// the plaintext ADMIN_PASSWORD fallback is not wanted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
