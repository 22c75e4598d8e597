package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deviceInventoryManagement/models"
)

// UserRepository answers the authentication check against the users
// table.
type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserRepository(db *sql.DB, logger *zap.Logger) *UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRepository{db: db, logger: logger}
}

// Authenticate returns the user matching username and password exactly,
// case-sensitively. Passwords are stored and compared in plain text.
// Unknown username, wrong password and storage faults all return nil;
// callers cannot tell the cases apart.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) *models.User {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id,username,password,role FROM users WHERE username = ? AND password = ?`,
		username, password).
		Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("authentication query failed",
				zap.String("call_id", uuid.NewString()), zap.Error(err))
		}
		return nil
	}
	return &u
}
