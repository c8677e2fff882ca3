package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost balances login latency against brute-force resistance.
const bcryptCost = 10

// HashPassword returns the salted bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword reports whether plaintext matches the stored digest.
// A mismatch is a plain false, never an error surfaced to callers.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
