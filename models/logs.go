package models

import "time"

// TimestampLayout is the Go layout for the persisted timestamp format
// "MM/dd/yyyy hh:mm:ss a" (12-hour clock with AM/PM). Every row in the
// log tables stores its timestamp as text in this exact shape, and all
// date filtering is a literal prefix match on it.
const TimestampLayout = "01/02/2006 03:04:05 PM"

// DateLayout is the leading calendar-date portion of TimestampLayout,
// the conventional prefix used for per-day report filters.
const DateLayout = "01/02/2006"

// FormatTimestamp renders t in the persisted timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// LoginLogEntry is a login_logs row joined with the acting username.
// Username is nil when the user row has since been deleted; the log
// entry itself is never dropped.
type LoginLogEntry struct {
	ID         int64   `db:"id" json:"id"`
	Username   *string `db:"username" json:"username"`
	ActionType string  `db:"action_type" json:"action_type"`
	Timestamp  string  `db:"timestamp" json:"timestamp"`
}

// ActionLogEntry is an action_logs row joined with the acting username.
type ActionLogEntry struct {
	ID                int64   `db:"id" json:"id"`
	Username          *string `db:"username" json:"username"`
	ActionDescription string  `db:"action_description" json:"action_description"`
	Timestamp         string  `db:"timestamp" json:"timestamp"`
}
