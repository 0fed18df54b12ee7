package domain

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleOwner    UserRole = "OWNER"
	RoleStaff    UserRole = "STAFF"
	RoleCustomer UserRole = "CUSTOMER"
)

// User represents a registered account
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         UserRole
	BusinessID   *int64 // nil, пока владелец не создал бизнес

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBusiness returns true if the user is linked to a business
func (u *User) HasBusiness() bool {
	return u.BusinessID != nil
}

// IsValidRole проверяет, что строка является допустимой ролью
func IsValidRole(role string) bool {
	switch UserRole(role) {
	case RoleOwner, RoleStaff, RoleCustomer:
		return true
	default:
		return false
	}
}
