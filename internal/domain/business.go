package domain

import "time"

// Business represents a registered business owned by a single user
type Business struct {
	ID       int64
	OwnerID  int64
	Name     string
	Category string
	Phone    string
	Address  string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
