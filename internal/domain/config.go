package domain

import "github.com/shopspring/decimal"

// Config carries the circulation parameters every policy decision depends on.
// It is loaded from the settings store at the operation boundary and passed
// explicitly into the engine; the engine keeps no ambient state.
type Config struct {
	LoanPeriodDays        int
	MaxRenewals           int
	FinePerDay            decimal.Decimal
	FineCap               decimal.Decimal
	GraceDays             int
	DaysForBlock          int
	PermitRenewalWhenLate bool
	MaxLoansPerPatron     int
}

// Validate rejects parameter combinations that would make the policy
// degenerate (non-positive loan period, negative money or day counts).
func (c Config) Validate() error {
	if c.LoanPeriodDays <= 0 {
		return ErrInvalidConfig
	}
	if c.MaxRenewals < 0 || c.GraceDays < 0 || c.DaysForBlock < 0 {
		return ErrInvalidConfig
	}
	if c.MaxLoansPerPatron <= 0 {
		return ErrInvalidConfig
	}
	if c.FinePerDay.IsNegative() || c.FineCap.IsNegative() {
		return ErrInvalidConfig
	}
	return nil
}
