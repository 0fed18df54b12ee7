package domain

import "time"

// Service represents a bookable service offered by a business
type Service struct {
	ID          int64
	BusinessID  int64
	Name        string
	DurationMin int
	Price       float64
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
