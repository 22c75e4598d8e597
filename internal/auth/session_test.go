package auth

import (
	"path/filepath"
	"testing"
	"time"

	"deviceInventoryManagement/models"
)

func TestIssueAndParseToken(t *testing.T) {
	u := &models.User{ID: 7, Username: "admin", Role: "admin"}

	tok, err := IssueToken("secret", u, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	s, err := ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.UserID != 7 || s.Username != "admin" || s.Role != "admin" {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	u := &models.User{ID: 1, Username: "admin", Role: "admin"}
	tok, err := IssueToken("secret", u, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken(tok, "other"); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	u := &models.User{ID: 1, Username: "admin", Role: "admin"}
	tok, err := IssueToken("secret", u, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken(tok, "secret"); err == nil {
		t.Fatalf("expected parse failure for expired token")
	}
}

func TestIssueToken_EmptySecret(t *testing.T) {
	u := &models.User{ID: 1, Username: "admin"}
	if _, err := IssueToken("", u, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestSessionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "devinv.session")

	if err := WriteSessionFile(path, "tok-123"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadSessionFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("round trip mismatch: %q", got)
	}

	if err := RemoveSessionFile(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := ReadSessionFile(path); err == nil {
		t.Fatalf("expected read failure after removal")
	}
	// Removing again is not an error.
	if err := RemoveSessionFile(path); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}
