package model

import "time"

// Role is the closed set of admin roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// CanReview reports whether the role may access the review dashboard.
// Every protected entry point goes through this single check.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AdminUser represents a credentialed reviewer account. Accounts are
// provisioned out-of-band (cmd/createadmin) and deactivated rather than
// deleted.
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Role         Role      `json:"role" gorm:"type:text;not null;default:admin"`
	IsActive     bool      `json:"isActive" gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
