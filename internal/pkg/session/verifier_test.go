package session

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwtlib.Claims) string {
	t.Helper()
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestVerify_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		Subject: "user_abc",
		Email:   "a@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	v := NewHMACVerifier(testSecret)
	c, err := v.Verify(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Subject != "user_abc" {
		t.Fatalf("unexpected subject: %q", c.Subject)
	}
	if c.Email != "a@example.com" {
		t.Fatalf("unexpected email: %q", c.Email)
	}
}

func TestVerify_FallsBackToRegisteredSubject(t *testing.T) {
	token := signToken(t, testSecret, jwtlib.RegisteredClaims{
		Subject:   "user_std",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})

	c, err := NewHMACVerifier(testSecret).Verify(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Subject != "user_std" {
		t.Fatalf("expected registered sub fallback, got %q", c.Subject)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		Subject: "user_abc",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := NewHMACVerifier(testSecret).Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", Claims{
		Subject: "user_abc",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := NewHMACVerifier(testSecret).Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_WrongSigningMethod(t *testing.T) {
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{Subject: "user_abc"})
	s, err := tok.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := NewHMACVerifier(testSecret).Verify(s); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		Email: "a@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := NewHMACVerifier(testSecret).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	if _, err := NewHMACVerifier(testSecret).Verify("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
