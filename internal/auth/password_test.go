package auth_test

import (
	"testing"

	"github.com/BellaCucina/bistro-backend/internal/auth"
)

// TestHashPasswordSaltRandomization verifies that hashing the same password
// twice yields two different stored credentials, and that both still verify.
func TestHashPasswordSaltRandomization(t *testing.T) {
	const password = "secret123"

	hash1, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	hash2, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash1 == hash2 {
		t.Error("expected two hashes of the same password to differ (random salt)")
	}
	if !auth.VerifyPassword(password, hash1) {
		t.Error("expected password to verify against first hash")
	}
	if !auth.VerifyPassword(password, hash2) {
		t.Error("expected password to verify against second hash")
	}
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if auth.VerifyPassword("wrong-horse", hash) {
		t.Error("expected wrong password to fail verification")
	}
	if auth.VerifyPassword("", hash) {
		t.Error("expected empty password to fail verification")
	}
}

// TestVerifyPasswordMalformedCredential verifies that a corrupted stored
// credential verifies as false rather than panicking or erroring.
func TestVerifyPasswordMalformedCredential(t *testing.T) {
	for _, credential := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		if auth.VerifyPassword("anything", credential) {
			t.Errorf("expected malformed credential %q to verify as false", credential)
		}
	}
}
