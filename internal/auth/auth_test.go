package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndResolve(t *testing.T) {
	svc := NewService("test-secret-key")

	token, err := svc.Issue("user-1", "someone@cmrcet.ac.in")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user id 'user-1', got %q", claims.UserID)
	}
	if claims.Email != "someone@cmrcet.ac.in" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
}

func TestResolveWrongSecret(t *testing.T) {
	token, _ := NewService("secret1").Issue("user-1", "a@cmrcet.ac.in")

	if _, err := NewService("secret2").Resolve(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestResolveInvalid(t *testing.T) {
	if _, err := NewService("secret").Resolve("not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestResolveExpired(t *testing.T) {
	secret := "test-secret-key"
	claims := Claims{
		UserID: "user-1",
		Email:  "a@cmrcet.ac.in",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := NewService(secret).Resolve(expired); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := NewService("test")
	token, _ := svc.Issue("user-1", "a@cmrcet.ac.in")
	claims, _ := svc.Resolve(token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "hunter22") {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
