package domain

import "errors"

var (
	ErrCopyUnavailable      = errors.New("copy unavailable")
	ErrCopyNotFound         = errors.New("copy not found")
	ErrPatronBlocked        = errors.New("patron blocked")
	ErrPatronNotFound       = errors.New("patron not found")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrInvalidLoanState     = errors.New("invalid loan state")
	ErrRenewalLimitExceeded = errors.New("renewal limit exceeded")
	ErrLoanOverdue          = errors.New("loan overdue")
	ErrBookNotFound         = errors.New("book not found")
	ErrTitleRequired        = errors.New("book title required")
	ErrBarcodeRequired      = errors.New("copy barcode required")
	ErrBarcodeAlreadyExists = errors.New("copy barcode already exists")
	ErrPatronNameRequired   = errors.New("patron name required")
	ErrCardNumberRequired   = errors.New("patron card number required")
	ErrCardAlreadyExists    = errors.New("patron card number already exists")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidID            = errors.New("invalid id")
)
