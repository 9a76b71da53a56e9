package utils

import (
	"testing"

	"hotel-ops-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Role: models.RoleReception}

	token, err := GenerateToken(user, "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	actor, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if actor.UserID != 42 {
		t.Errorf("UserID = %d, want 42", actor.UserID)
	}
	if actor.Role != models.RoleReception {
		t.Errorf("Role = %s, want reception", actor.Role)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleGuest}
	token, err := GenerateToken(user, "secret-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", "secret"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
