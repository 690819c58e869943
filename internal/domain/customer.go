package domain

import "time"

// Customer represents a customer who can hold appointments
type Customer struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	Phone      string
	DivisionID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact represents an internal contact assigned to appointments
type Contact struct {
	ID    int64
	Name  string
	Email string
}
