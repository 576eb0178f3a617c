package models

import "time"

// Role is the staff role stored on a user account. Only RoleAdmin unlocks
// staff and settings management; the other roles are descriptive.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
	RoleStaff  Role = "staff"
)

// ParseRole validates a role string coming from a form submission
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// IsAdmin reports whether the role grants administrative access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents the users table (hospital staff accounts)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:80" json:"username"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	RealName     string    `gorm:"not null;size:100" json:"real_name"`
	Role         Role      `gorm:"not null;size:50;default:'staff'" json:"role"`
	Department   *string   `gorm:"size:100" json:"department,omitempty"`
	Phone        *string   `gorm:"size:20" json:"phone,omitempty"`
	Email        *string   `gorm:"size:100" json:"email,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
