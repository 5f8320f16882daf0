package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken(testSecret, 42, "owner", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "owner" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken(testSecret, 42, "owner", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken(testSecret, 42, "student", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestEmptySecret(t *testing.T) {
	if _, err := GenerateToken("", 1, "student", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret on generate")
	}
	tok, _ := GenerateToken(testSecret, 1, "student", time.Hour)
	if _, err := ParseToken(tok, ""); err == nil {
		t.Fatalf("expected error for empty secret on parse")
	}
}
