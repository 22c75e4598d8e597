package repository

import (
	"context"

	"deviceInventoryManagement/models"
)

// DeviceRepositoryI defines operations on Device entities.
type DeviceRepositoryI interface {
	GetAll(ctx context.Context) []models.Device
	GetByID(ctx context.Context, id int64) *models.Device
	Insert(ctx context.Context, d *models.Device) bool
	Update(ctx context.Context, d *models.Device) bool
	Delete(ctx context.Context, id int64) bool
	CountAll(ctx context.Context) int
	CountByStatus(ctx context.Context, status string) int
	CountByStatuses(ctx context.Context, statuses []string) int
}

// LogRepositoryI defines the append-only audit trail operations.
type LogRepositoryI interface {
	InsertLoginLog(ctx context.Context, userID int64, actionType, timestamp string)
	InsertActionLog(ctx context.Context, userID int64, description, timestamp string)
	GetLoginLogs(ctx context.Context) []models.LoginLogEntry
	GetLoginLogsByDatePrefix(ctx context.Context, prefix string) []models.LoginLogEntry
	GetActionLogs(ctx context.Context) []models.ActionLogEntry
	GetActionLogsByDatePrefix(ctx context.Context, prefix string) []models.ActionLogEntry
}

// UserRepositoryI defines the authentication check.
type UserRepositoryI interface {
	Authenticate(ctx context.Context, username, password string) *models.User
}
