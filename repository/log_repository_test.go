package repository

import (
	"context"
	"testing"

	"deviceInventoryManagement/internal/testutil"
)

func TestLogRepository_LoginLogs(t *testing.T) {
	d := testutil.OpenTestDB(t, "loginlogs")
	logs := NewLogRepository(d, nil)
	users := NewUserRepository(d, nil)
	ctx := context.Background()

	admin := users.Authenticate(ctx, "admin", "admin")
	if admin == nil {
		t.Fatalf("seeded admin missing")
	}

	logs.InsertLoginLog(ctx, admin.ID, "<User> login", "11/16/2025 09:15:00 AM")
	logs.InsertLoginLog(ctx, admin.ID, "<User> logout", "11/16/2025 05:30:00 PM")
	logs.InsertLoginLog(ctx, admin.ID, "<User> login", "11/17/2025 08:00:00 AM")

	all := logs.GetLoginLogs(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 login logs, got %d", len(all))
	}
	// Newest first by id.
	for i := 1; i < len(all); i++ {
		if all[i-1].ID <= all[i].ID {
			t.Fatalf("expected descending ids: %d before %d", all[i-1].ID, all[i].ID)
		}
	}
	if all[0].Username == nil || *all[0].Username != "admin" {
		t.Fatalf("expected username joined, got %+v", all[0])
	}

	day := logs.GetLoginLogsByDatePrefix(ctx, "11/16/2025")
	if len(day) != 2 {
		t.Fatalf("expected 2 logs on 11/16/2025, got %d", len(day))
	}
	// The filtered view is exactly the matching subset of the full view,
	// in the same order.
	var wantIDs []int64
	for _, e := range all {
		if len(e.Timestamp) >= 10 && e.Timestamp[:10] == "11/16/2025" {
			wantIDs = append(wantIDs, e.ID)
		}
	}
	for i, e := range day {
		if e.ID != wantIDs[i] {
			t.Fatalf("prefix filter order mismatch at %d: got %d want %d", i, e.ID, wantIDs[i])
		}
	}

	if got := logs.GetLoginLogsByDatePrefix(ctx, "12/25/2025"); len(got) != 0 {
		t.Fatalf("expected no logs for unmatched prefix, got %d", len(got))
	}
}

func TestLogRepository_DeletedUserKeepsLogRow(t *testing.T) {
	d := testutil.OpenTestDB(t, "loglefjoin")
	logs := NewLogRepository(d, nil)
	ctx := context.Background()

	res, err := d.Exec(`INSERT INTO users (username,password,role) VALUES ('temp','x','viewer')`)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	uid, _ := res.LastInsertId()

	logs.InsertLoginLog(ctx, uid, "<User> login", "11/16/2025 09:15:00 AM")
	if _, err := d.Exec(`DELETE FROM users WHERE id = ?`, uid); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	all := logs.GetLoginLogs(ctx)
	if len(all) != 1 {
		t.Fatalf("expected log row to survive user deletion, got %d rows", len(all))
	}
	if all[0].Username != nil {
		t.Fatalf("expected nil username for deleted user, got %q", *all[0].Username)
	}
	if all[0].ActionType != "<User> login" {
		t.Fatalf("unexpected action type %q", all[0].ActionType)
	}
}

func TestLogRepository_ActionLogs(t *testing.T) {
	d := testutil.OpenTestDB(t, "actionlogs")
	logs := NewLogRepository(d, nil)
	users := NewUserRepository(d, nil)
	ctx := context.Background()

	admin := users.Authenticate(ctx, "admin", "admin")
	if admin == nil {
		t.Fatalf("seeded admin missing")
	}

	logs.InsertActionLog(ctx, admin.ID, "Added device: PC-001", "11/16/2025 10:00:00 AM")
	logs.InsertActionLog(ctx, admin.ID, "Updated device: PC-001 (ID 1)", "11/17/2025 10:05:00 AM")

	all := logs.GetActionLogs(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 action logs, got %d", len(all))
	}
	if all[0].ActionDescription != "Updated device: PC-001 (ID 1)" {
		t.Fatalf("expected newest first, got %+v", all[0])
	}

	day := logs.GetActionLogsByDatePrefix(ctx, "11/16/2025")
	if len(day) != 1 || day[0].ActionDescription != "Added device: PC-001" {
		t.Fatalf("unexpected filtered action logs: %+v", day)
	}
}
