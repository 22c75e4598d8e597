package models

// User represents an account in the system.
// It maps to the `users` table in SQLite. Password holds the stored
// value verbatim; there is no hashing in this data layer.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
}

// IsAdmin reports whether the user has the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
