package postgres

import (
	"context"
	"fmt"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository reads and writes the single settings row seeded by
// the migrations.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.Config, error) {
	const query = `
SELECT loan_period_days, max_renewals, fine_per_day, fine_cap, grace_days,
       days_for_block, permit_renewal_when_late, max_loans_per_patron
FROM settings
WHERE id = 1`

	var cfg domain.Config
	err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.LoanPeriodDays,
		&cfg.MaxRenewals,
		&cfg.FinePerDay,
		&cfg.FineCap,
		&cfg.GraceDays,
		&cfg.DaysForBlock,
		&cfg.PermitRenewalWhenLate,
		&cfg.MaxLoansPerPatron,
	)
	if err != nil {
		return domain.Config{}, fmt.Errorf("get settings: %w", err)
	}
	return cfg, nil
}

func (r *SettingsRepository) Update(ctx context.Context, cfg domain.Config) error {
	const stmt = `
UPDATE settings
SET loan_period_days = $1, max_renewals = $2, fine_per_day = $3, fine_cap = $4,
    grace_days = $5, days_for_block = $6, permit_renewal_when_late = $7,
    max_loans_per_patron = $8
WHERE id = 1`

	_, err := r.pool.Exec(ctx, stmt,
		cfg.LoanPeriodDays,
		cfg.MaxRenewals,
		cfg.FinePerDay,
		cfg.FineCap,
		cfg.GraceDays,
		cfg.DaysForBlock,
		cfg.PermitRenewalWhenLate,
		cfg.MaxLoansPerPatron,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
