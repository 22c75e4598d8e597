package repository

import (
	"context"
	"testing"

	"deviceInventoryManagement/internal/testutil"
)

func TestUserRepository_Authenticate(t *testing.T) {
	d := testutil.OpenTestDB(t, "userauth")
	users := NewUserRepository(d, nil)
	ctx := context.Background()

	// Seeded default admin authenticates on a fresh store.
	u := users.Authenticate(ctx, "admin", "admin")
	if u == nil {
		t.Fatalf("expected seeded admin to authenticate")
	}
	if u.Username != "admin" || u.Role != "admin" || u.ID == 0 {
		t.Fatalf("unexpected admin user: %+v", u)
	}
	if !u.IsAdmin() {
		t.Fatalf("expected admin role")
	}

	// Wrong password and unknown username are indistinguishable.
	if got := users.Authenticate(ctx, "admin", "wrong"); got != nil {
		t.Fatalf("expected nil for wrong password, got %+v", got)
	}
	if got := users.Authenticate(ctx, "nobody", "admin"); got != nil {
		t.Fatalf("expected nil for unknown user, got %+v", got)
	}

	// Matching is case-sensitive on both fields.
	if got := users.Authenticate(ctx, "Admin", "admin"); got != nil {
		t.Fatalf("expected nil for case-mismatched username, got %+v", got)
	}
	if got := users.Authenticate(ctx, "admin", "ADMIN"); got != nil {
		t.Fatalf("expected nil for case-mismatched password, got %+v", got)
	}
}
