// Package policy implements the loan lifecycle rules: which state
// transitions are legal, how due dates extend on renewal, and how fines
// accrue. Every function is pure — state comes in as arguments and a new
// value comes out — so the package is safe to call from any concurrency
// model without locking. Atomicity across read-check-write (two checkouts
// racing on one copy) is the storage layer's contract, not this package's.
package policy

import (
	"fmt"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

// Checkout validates copy availability and patron standing and produces a
// new outstanding loan due LoanPeriodDays from now. outstanding is the
// patron's current count of unreturned loans as reported by the gateway.
// The caller assigns the loan ID and persists the availability flip.
func Checkout(copy domain.Copy, patron domain.Patron, outstanding int, now time.Time, cfg domain.Config) (domain.Loan, error) {
	if !copy.Available {
		return domain.Loan{}, domain.ErrCopyUnavailable
	}
	if !patron.Active {
		return domain.Loan{}, fmt.Errorf("%w: account inactive", domain.ErrPatronBlocked)
	}
	if outstanding >= cfg.MaxLoansPerPatron {
		return domain.Loan{}, fmt.Errorf("%w: %d loans outstanding, limit is %d",
			domain.ErrPatronBlocked, outstanding, cfg.MaxLoansPerPatron)
	}

	return domain.Loan{
		CopyID:     copy.ID,
		PatronID:   patron.ID,
		BorrowedAt: now,
		DueAt:      domain.StartOfDay(now).AddDate(0, 0, cfg.LoanPeriodDays),
		FineAmount: decimal.Zero,
	}, nil
}

// Renew extends the due date of an outstanding loan. The extension is
// anchored on whichever is later, today or the current due date, so
// renewing early never shrinks the total borrow time.
func Renew(loan domain.Loan, now time.Time, cfg domain.Config) (domain.Loan, error) {
	if loan.ReturnedAt != nil {
		return domain.Loan{}, fmt.Errorf("%w: loan already returned", domain.ErrInvalidLoanState)
	}
	if loan.RenewalCount >= cfg.MaxRenewals {
		return domain.Loan{}, fmt.Errorf("%w: limit is %d", domain.ErrRenewalLimitExceeded, cfg.MaxRenewals)
	}
	if !cfg.PermitRenewalWhenLate {
		if late := domain.DaysBetween(loan.DueAt, now); late > cfg.DaysForBlock {
			return domain.Loan{}, fmt.Errorf("%w: %d days late", domain.ErrLoanOverdue, late)
		}
	}

	base := loan.DueAt
	if today := domain.StartOfDay(now); today.After(base) {
		base = today
	}
	loan.DueAt = base.AddDate(0, 0, cfg.LoanPeriodDays)
	loan.RenewalCount++
	return loan, nil
}

// Return closes an outstanding loan, freezing the fine at its value as of
// now. Returning an already-returned loan is rejected; the first return's
// fine stands.
func Return(loan domain.Loan, now time.Time, cfg domain.Config) (domain.Loan, error) {
	if loan.ReturnedAt != nil {
		return domain.Loan{}, fmt.Errorf("%w: loan already returned", domain.ErrInvalidLoanState)
	}

	returnedAt := now
	loan.ReturnedAt = &returnedAt
	loan.FineAmount = Fine(loan, now, cfg)
	return loan, nil
}

// Fine computes the fine accrued by asOf: whole days late past the grace
// period, times the per-day rate, capped. For an outstanding loan this is
// a to-date estimate; once the loan is returned the return date wins and
// the result no longer moves with asOf. Never negative.
func Fine(loan domain.Loan, asOf time.Time, cfg domain.Config) decimal.Decimal {
	effective := asOf
	if loan.ReturnedAt != nil {
		effective = *loan.ReturnedAt
	}

	overdueDays := domain.DaysBetween(loan.DueAt, effective) - cfg.GraceDays
	if overdueDays <= 0 {
		return decimal.Zero
	}

	fine := cfg.FinePerDay.Mul(decimal.NewFromInt(int64(overdueDays)))
	if fine.GreaterThan(cfg.FineCap) {
		return cfg.FineCap
	}
	return fine
}
