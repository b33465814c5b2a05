package domain

import "time"

// Customer is a bank customer. Owned by the customer relational store;
// CustomerAccount references it by CustomerID (soft foreign key).
type Customer struct {
	ID          int
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	State       string
	ZipCode     string
	IsActive    bool
	CreatedDate time.Time
}
