package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deviceInventoryManagement/models"
)

// LogRepository is the append-only audit trail store. Inserts are
// fire-and-forget: a failed insert is reported only on the diagnostic
// log, never to the caller, so failing to log can never block the
// action being logged. Rows are never updated or deleted.
type LogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewLogRepository(db *sql.DB, logger *zap.Logger) *LogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogRepository{db: db, logger: logger}
}

// InsertLoginLog appends a login/logout event for the given user.
func (r *LogRepository) InsertLoginLog(ctx context.Context, userID int64, actionType, timestamp string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO login_logs (user_id,action_type,timestamp) VALUES (?,?,?)`,
		userID, actionType, timestamp)
	if err != nil {
		r.fault("login log insert failed", err)
	}
}

// InsertActionLog appends a user-action event for the given user.
func (r *LogRepository) InsertActionLog(ctx context.Context, userID int64, description, timestamp string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO action_logs (user_id,action_description,timestamp) VALUES (?,?,?)`,
		userID, description, timestamp)
	if err != nil {
		r.fault("action log insert failed", err)
	}
}

// GetLoginLogs returns all login log rows joined with usernames, newest
// first. Rows whose user was deleted carry a nil username instead of
// being dropped. Empty slice on error.
func (r *LogRepository) GetLoginLogs(ctx context.Context) []models.LoginLogEntry {
	return r.loginLogs(ctx, "")
}

// GetLoginLogsByDatePrefix returns the login log rows whose stored
// timestamp text starts with prefix, newest first. The match is a
// literal prefix comparison, not a parsed date range.
func (r *LogRepository) GetLoginLogsByDatePrefix(ctx context.Context, prefix string) []models.LoginLogEntry {
	return r.loginLogs(ctx, prefix)
}

func (r *LogRepository) loginLogs(ctx context.Context, prefix string) []models.LoginLogEntry {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT l.id, u.username, l.action_type, l.timestamp FROM login_logs l LEFT JOIN users u ON l.user_id = u.id`
	args := []any{}
	if prefix != "" {
		query += ` WHERE l.timestamp LIKE ?`
		args = append(args, prefix+"%")
	}
	query += ` ORDER BY l.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.fault("login log fetch failed", err)
		return []models.LoginLogEntry{}
	}
	defer rows.Close()

	out := []models.LoginLogEntry{}
	for rows.Next() {
		var e models.LoginLogEntry
		var username sql.NullString
		if err := rows.Scan(&e.ID, &username, &e.ActionType, &e.Timestamp); err != nil {
			r.fault("login log scan failed", err)
			return []models.LoginLogEntry{}
		}
		if username.Valid {
			v := username.String
			e.Username = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		r.fault("login log fetch failed", err)
		return []models.LoginLogEntry{}
	}
	return out
}

// GetActionLogs returns all action log rows joined with usernames,
// newest first. Empty slice on error.
func (r *LogRepository) GetActionLogs(ctx context.Context) []models.ActionLogEntry {
	return r.actionLogs(ctx, "")
}

// GetActionLogsByDatePrefix returns the action log rows whose stored
// timestamp text starts with prefix, newest first.
func (r *LogRepository) GetActionLogsByDatePrefix(ctx context.Context, prefix string) []models.ActionLogEntry {
	return r.actionLogs(ctx, prefix)
}

func (r *LogRepository) actionLogs(ctx context.Context, prefix string) []models.ActionLogEntry {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT a.id, u.username, a.action_description, a.timestamp FROM action_logs a LEFT JOIN users u ON a.user_id = u.id`
	args := []any{}
	if prefix != "" {
		query += ` WHERE a.timestamp LIKE ?`
		args = append(args, prefix+"%")
	}
	query += ` ORDER BY a.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.fault("action log fetch failed", err)
		return []models.ActionLogEntry{}
	}
	defer rows.Close()

	out := []models.ActionLogEntry{}
	for rows.Next() {
		var e models.ActionLogEntry
		var username sql.NullString
		if err := rows.Scan(&e.ID, &username, &e.ActionDescription, &e.Timestamp); err != nil {
			r.fault("action log scan failed", err)
			return []models.ActionLogEntry{}
		}
		if username.Valid {
			v := username.String
			e.Username = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		r.fault("action log fetch failed", err)
		return []models.ActionLogEntry{}
	}
	return out
}

func (r *LogRepository) fault(msg string, err error) {
	r.logger.Warn(msg, zap.String("call_id", uuid.NewString()), zap.Error(err))
}
