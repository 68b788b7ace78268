package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for staff password hashes.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a staff user's plaintext password with bcrypt.
// Used by account seeding and password-change flows; login only verifies.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
