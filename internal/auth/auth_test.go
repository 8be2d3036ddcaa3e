package auth

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "user@example.com" {
		t.Errorf("Subject = %q, want user@example.com", claims.Subject)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other := NewTokenManager("another-secret-another-secret-ab", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("Parse with wrong secret error = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	// Negative TTL is coerced to the default by the constructor, so build an
	// already-expired token through a manager with minimal TTL and a parse
	// after expiry is simulated with a manually short-lived manager.
	short := &TokenManager{secret: []byte(testSecret), ttl: -time.Minute}
	token, err := short.Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("Parse of expired token error = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	if _, err := tm.Parse("not.a.token"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("Parse garbage error = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Welcome1!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Welcome1!" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "Welcome1!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "Welcome2!") {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordRejectsShort(t *testing.T) {
	if _, err := HashPassword("short"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("short password error = %v, want ErrInvalidInput", err)
	}
}
