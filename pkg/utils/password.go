package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of pw. Plaintext passwords never
// reach storage.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword reports whether pw matches the stored bcrypt hash.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
