package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "borrowed"
	LoanStatusOverdue  LoanStatus = "overdue"
	LoanStatusReturned LoanStatus = "returned"
)

// Loan represents one checkout of one physical copy to one patron.
type Loan struct {
	ID           string
	CopyID       string
	PatronID     string
	BorrowedAt   time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	RenewalCount int
	// FineAmount is zero while the loan is outstanding and frozen on return.
	FineAmount decimal.Decimal
}

// Status derives the lifecycle state from the dates. The persisted status
// column is only a cached label; this is the source of truth.
func (l Loan) Status(asOf time.Time) LoanStatus {
	if l.ReturnedAt != nil {
		return LoanStatusReturned
	}
	if l.IsOverdue(asOf) {
		return LoanStatusOverdue
	}
	return LoanStatusBorrowed
}

// IsOverdue reports whether the loan is still outstanding past its due date.
// Comparison is by whole calendar day: a loan due on the 15th becomes
// overdue on the 16th.
func (l Loan) IsOverdue(asOf time.Time) bool {
	return l.ReturnedAt == nil && DaysBetween(l.DueAt, asOf) > 0
}

// DaysRemaining is positive before the due date and negative once past it.
func (l Loan) DaysRemaining(asOf time.Time) int {
	return DaysBetween(asOf, l.DueAt)
}
