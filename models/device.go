package models

// Known device status values. The UI layer restricts input to this set,
// but the data layer stores and matches status as free text.
const (
	StatusNew              = "New"
	StatusOld              = "Old"
	StatusInUse            = "In Use"
	StatusRepaired         = "Repaired"
	StatusUnderMaintenance = "Under Maintenance"
	StatusDisposed         = "Disposed"
	StatusMissing          = "Missing"
	StatusBroken           = "Broken"
)

// Device represents a tracked inventory device.
// It maps to the `devices` table in SQLite. PurchaseDate is stored as
// free text and is never parsed by the core.
type Device struct {
	ID           int64   `db:"id" json:"id"`
	DeviceNumber string  `db:"device_number" json:"device_number"`
	Type         string  `db:"type" json:"type"`
	Brand        string  `db:"brand" json:"brand"`
	Model        string  `db:"model" json:"model"`
	Status       string  `db:"status" json:"status"`
	Location     string  `db:"location" json:"location"`
	PurchaseDate string  `db:"purchase_date" json:"purchase_date"`
	Notes        string  `db:"notes" json:"notes"`
	Cost         float64 `db:"cost" json:"cost"`
}
