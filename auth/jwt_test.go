package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, "reporter@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "reporter@example.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > tokenTTL {
		t.Errorf("expiry = %v", claims.ExpiresAt)
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(7, "reporter@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected validation failure with a different secret")
	}
}

func TestValidateJWTRejectsUnsignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(raw); err == nil {
		t.Fatal("expected rejection of an unsigned token")
	}
}
