package model

// User represents an account. Passwords are stored and compared as plain
// text: exported backups redact them, and re-importing a redacted backup is
// documented to break logins rather than silently succeed.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	CreatedAt int64  `json:"createdAt"`
}

// Roles.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// IsAdmin reports whether the user exists and has the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Public returns a copy safe to send to clients, with the password cleared so
// it drops out of the encoded JSON.
func (u User) Public() User {
	u.Password = ""
	return u
}
