package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "owner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "owner" {
		t.Errorf("role = %q, want owner", claims.Role)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "owner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("expected error for tampered signature")
	}
}
