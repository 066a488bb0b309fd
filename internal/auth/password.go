package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a stored credential from a plaintext password. bcrypt
// embeds a random per-password salt in the credential, so hashing the same
// input twice yields different credentials.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored credential.
// The comparison is constant-time, and malformed credentials verify as
// false rather than erroring.
func VerifyPassword(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
