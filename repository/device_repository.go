package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deviceInventoryManagement/models"
)

// DeviceRepository provides CRUD and aggregate queries over the devices
// table. Every operation is fail-soft: storage faults are logged with a
// call_id for correlation and collapse to an empty/zero/false result so
// callers stay interactive under a transient storage problem.
type DeviceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewDeviceRepository(db *sql.DB, logger *zap.Logger) *DeviceRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceRepository{db: db, logger: logger}
}

const deviceColumns = `id, device_number, type, brand, model, status, location, purchase_date, notes, cost`

func scanDevice(row interface{ Scan(...any) error }, d *models.Device) error {
	return row.Scan(&d.ID, &d.DeviceNumber, &d.Type, &d.Brand, &d.Model,
		&d.Status, &d.Location, &d.PurchaseDate, &d.Notes, &d.Cost)
}

// GetAll returns every device ordered by id ascending. Empty slice on
// error.
func (r *DeviceRepository) GetAll(ctx context.Context) []models.Device {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY id`)
	if err != nil {
		r.fault("device fetch failed", err)
		return []models.Device{}
	}
	defer rows.Close()

	out := []models.Device{}
	for rows.Next() {
		var d models.Device
		if err := scanDevice(rows, &d); err != nil {
			r.fault("device scan failed", err)
			return []models.Device{}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		r.fault("device fetch failed", err)
		return []models.Device{}
	}
	return out
}

// GetByID returns the device with the given id, or nil both when no such
// row exists and on storage faults.
func (r *DeviceRepository) GetByID(ctx context.Context, id int64) *models.Device {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var d models.Device
	err := scanDevice(r.db.QueryRowContext(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = ?`, id), &d)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.fault("device fetch by id failed", err)
		}
		return nil
	}
	return &d
}

// Insert writes a new device row. Any id on the input is ignored; on
// success the generated id is written back to d. Returns true iff
// exactly one row was inserted.
func (r *DeviceRepository) Insert(ctx context.Context, d *models.Device) bool {
	if d == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO devices (device_number,type,brand,model,status,location,purchase_date,notes,cost) VALUES (?,?,?,?,?,?,?,?,?)`,
		d.DeviceNumber, d.Type, d.Brand, d.Model, d.Status, d.Location, d.PurchaseDate, d.Notes, d.Cost)
	if err != nil {
		r.fault("device insert failed", err)
		return false
	}
	n, err := res.RowsAffected()
	if err != nil || n != 1 {
		r.fault("device insert failed", err)
		return false
	}
	if id, err := res.LastInsertId(); err == nil {
		d.ID = id
	}
	return true
}

// Update rewrites every field of the row matching d.ID. Returns true iff
// a row existed and was modified.
func (r *DeviceRepository) Update(ctx context.Context, d *models.Device) bool {
	if d == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE devices SET device_number=?,type=?,brand=?,model=?,status=?,location=?,purchase_date=?,notes=?,cost=? WHERE id=?`,
		d.DeviceNumber, d.Type, d.Brand, d.Model, d.Status, d.Location, d.PurchaseDate, d.Notes, d.Cost, d.ID)
	if err != nil {
		r.fault("device update failed", err)
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.fault("device update failed", err)
		return false
	}
	return n > 0
}

// Delete removes the device with the given id. Returns true iff a row
// existed and was removed.
func (r *DeviceRepository) Delete(ctx context.Context, id int64) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE id = ?`, id)
	if err != nil {
		r.fault("device delete failed", err)
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.fault("device delete failed", err)
		return false
	}
	return n > 0
}

// CountAll returns the total number of device rows, 0 on error.
func (r *DeviceRepository) CountAll(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM devices`).Scan(&n); err != nil {
		r.fault("device count failed", err)
		return 0
	}
	return n
}

// CountByStatus counts devices whose status matches case-insensitively.
// An empty status matches rows whose stored status is literally "", not
// every row.
func (r *DeviceRepository) CountByStatus(ctx context.Context, status string) int {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM devices WHERE LOWER(status) = ?`,
		strings.ToLower(status)).Scan(&n)
	if err != nil {
		r.fault("device count by status failed", err)
		return 0
	}
	return n
}

// CountByStatuses counts devices whose status matches any of the given
// values, case-insensitively. An empty list short-circuits to 0 without
// querying.
func (r *DeviceRepository) CountByStatuses(ctx context.Context, statuses []string) int {
	if len(statuses) == 0 {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		placeholders[i] = "?"
		args[i] = strings.ToLower(s)
	}

	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM devices WHERE LOWER(status) IN (`+strings.Join(placeholders, ",")+`)`,
		args...).Scan(&n)
	if err != nil {
		r.fault("device count by statuses failed", err)
		return 0
	}
	return n
}

func (r *DeviceRepository) fault(msg string, err error) {
	r.logger.Warn(msg, zap.String("call_id", uuid.NewString()), zap.Error(err))
}
