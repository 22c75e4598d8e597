package db

import "database/sql"

// Default administrator account seeded on first run.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin" // default password: admin (change in production)
	DefaultAdminRole     = "admin"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS devices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		device_number TEXT,
		type TEXT,
		brand TEXT,
		model TEXT,
		status TEXT,
		location TEXT,
		purchase_date TEXT,
		notes TEXT,
		cost REAL
	)`,
	`CREATE TABLE IF NOT EXISTS login_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		action_type TEXT,
		timestamp TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS action_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		action_description TEXT,
		timestamp TEXT
	)`,
}

// Init ensures the four inventory tables exist and seeds the default
// administrator account if absent. Idempotent and safe to run on every
// process start; the admin insert is guarded by the UNIQUE constraint
// on username, so concurrent first runs cannot duplicate the row.
func Init(d *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := d.Exec(stmt); err != nil {
			return err
		}
	}

	var id int64
	err := d.QueryRow(`SELECT id FROM users WHERE username = ?`, DefaultAdminUsername).Scan(&id)
	if err == sql.ErrNoRows {
		_, err = d.Exec(`INSERT OR IGNORE INTO users (username,password,role) VALUES (?,?,?)`,
			DefaultAdminUsername, DefaultAdminPassword, DefaultAdminRole)
	}
	return err
}
