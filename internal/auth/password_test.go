package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected password to match")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected password mismatch")
	}
}

func TestCheckPasswordBadHash(t *testing.T) {
	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("expected mismatch for invalid digest")
	}
}
