package password_test

import (
	"errors"
	"testing"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/password"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := password.Hash("correct-horse-42")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct-horse-42" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := password.Check("correct-horse-42", hash); err != nil {
		t.Errorf("Check with right password failed: %v", err)
	}

	err = password.Check("wrong-password-42", hash)
	if !errors.Is(err, password.ErrMismatch) {
		t.Errorf("Check with wrong password: got %v, want ErrMismatch", err)
	}
}

func TestHash_RejectsShortPassword(t *testing.T) {
	if _, err := password.Hash("short"); err == nil {
		t.Fatal("expected error for password below minimum length")
	}
}

func TestCheck_GarbageHash(t *testing.T) {
	err := password.Check("whatever-123", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, password.ErrMismatch) {
		t.Error("malformed hash should not be reported as a plain mismatch")
	}
}
