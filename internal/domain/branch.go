package domain

import "time"

// BankBranch is a branch of a bank. Stored in the document store;
// identifiers are assigned from an atomic counter at creation.
type BankBranch struct {
	ID          int
	BankID      int
	BranchName  string
	Address     string
	City        string
	State       string
	ZipCode     string
	PhoneNumber string
	IsActive    bool
	CreatedDate time.Time
}
