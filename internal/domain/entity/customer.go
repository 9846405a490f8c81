package entity

import "time"

// Customer is a contact record in the shop's directory.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
