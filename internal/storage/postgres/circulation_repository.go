package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CirculationRepository struct {
	pool *pgxpool.Pool
}

func NewCirculationRepository(pool *pgxpool.Pool) *CirculationRepository {
	return &CirculationRepository{pool: pool}
}

func (r *CirculationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *CirculationRepository) GetCopyForUpdate(ctx context.Context, copyID string) (domain.Copy, error) {
	const query = `SELECT id, book_id, barcode, available FROM copies WHERE id = $1 FOR UPDATE`

	var cp domain.Copy
	err := r.queryRow(ctx, query, copyID).Scan(&cp.ID, &cp.BookID, &cp.Barcode, &cp.Available)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Copy{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Copy{}, domain.ErrCopyNotFound
		}
		return domain.Copy{}, fmt.Errorf("get copy: %w", err)
	}
	return cp, nil
}

func (r *CirculationRepository) GetPatron(ctx context.Context, patronID string) (domain.Patron, error) {
	const query = `SELECT id, name, email, card_number, active FROM patrons WHERE id = $1`

	var p domain.Patron
	err := r.queryRow(ctx, query, patronID).Scan(&p.ID, &p.Name, &p.Email, &p.CardNumber, &p.Active)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Patron{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Patron{}, domain.ErrPatronNotFound
		}
		return domain.Patron{}, fmt.Errorf("get patron: %w", err)
	}
	return p, nil
}

func (r *CirculationRepository) CountOutstandingLoans(ctx context.Context, patronID string) (int, error) {
	const query = `SELECT COUNT(*) FROM loans WHERE patron_id = $1 AND returned_at IS NULL`

	var count int
	if err := r.queryRow(ctx, query, patronID).Scan(&count); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrInvalidID
		}
		return 0, fmt.Errorf("count outstanding loans: %w", err)
	}
	return count, nil
}

func (r *CirculationRepository) CreateLoan(ctx context.Context, loan domain.Loan) error {
	const stmt = `
INSERT INTO loans (id, copy_id, patron_id, borrowed_at, due_at, returned_at, renewal_count, fine_amount, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		loan.ID,
		loan.CopyID,
		loan.PatronID,
		loan.BorrowedAt,
		loan.DueAt,
		loan.ReturnedAt,
		loan.RenewalCount,
		loan.FineAmount,
		cachedStatus(loan),
	)
	if err != nil {
		// The partial unique index on outstanding loans is the backstop
		// for two checkouts racing on one copy.
		if isUniqueViolation(err) {
			return domain.ErrCopyUnavailable
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create loan: %w", err)
	}
	return nil
}

func (r *CirculationRepository) GetLoan(ctx context.Context, loanID string) (domain.Loan, error) {
	return r.getLoan(ctx, loanID, false)
}

func (r *CirculationRepository) GetLoanForUpdate(ctx context.Context, loanID string) (domain.Loan, error) {
	return r.getLoan(ctx, loanID, true)
}

func (r *CirculationRepository) getLoan(ctx context.Context, loanID string, forUpdate bool) (domain.Loan, error) {
	query := `
SELECT id, copy_id, patron_id, borrowed_at, due_at, returned_at, renewal_count, fine_amount
FROM loans
WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var loan domain.Loan
	err := r.queryRow(ctx, query, loanID).Scan(
		&loan.ID,
		&loan.CopyID,
		&loan.PatronID,
		&loan.BorrowedAt,
		&loan.DueAt,
		&loan.ReturnedAt,
		&loan.RenewalCount,
		&loan.FineAmount,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Loan{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Loan{}, domain.ErrLoanNotFound
		}
		return domain.Loan{}, fmt.Errorf("get loan: %w", err)
	}
	return loan, nil
}

func (r *CirculationRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	const stmt = `
UPDATE loans
SET due_at = $2, returned_at = $3, renewal_count = $4, fine_amount = $5, status = $6
WHERE id = $1`

	tag, err := r.exec(ctx, stmt,
		loan.ID,
		loan.DueAt,
		loan.ReturnedAt,
		loan.RenewalCount,
		loan.FineAmount,
		cachedStatus(loan),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}
	return nil
}

func (r *CirculationRepository) SetCopyAvailability(ctx context.Context, copyID string, available bool) error {
	const stmt = `UPDATE copies SET available = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, copyID, available)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("set copy availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCopyNotFound
	}
	return nil
}

func (r *CirculationRepository) ListLoansByPatron(ctx context.Context, patronID string) ([]domain.Loan, error) {
	const query = `
SELECT id, copy_id, patron_id, borrowed_at, due_at, returned_at, renewal_count, fine_amount
FROM loans
WHERE patron_id = $1
ORDER BY borrowed_at DESC`

	rows, err := r.query(ctx, query, patronID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list loans by patron: %w", err)
	}
	return scanLoans(rows)
}

func (r *CirculationRepository) ListOverdueLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	const query = `
SELECT id, copy_id, patron_id, borrowed_at, due_at, returned_at, renewal_count, fine_amount
FROM loans
WHERE returned_at IS NULL AND due_at < $1
ORDER BY due_at ASC`

	rows, err := r.query(ctx, query, domain.StartOfDay(asOf))
	if err != nil {
		return nil, fmt.Errorf("list overdue loans: %w", err)
	}
	return scanLoans(rows)
}

// MarkOverdueStatuses reconciles the cached status label of outstanding
// loans whose due date has passed. The label is a projection for
// filtering; reads always recompute status from the dates.
func (r *CirculationRepository) MarkOverdueStatuses(ctx context.Context, asOf time.Time) (int64, error) {
	const stmt = `
UPDATE loans
SET status = 'overdue'
WHERE returned_at IS NULL AND status = 'borrowed' AND due_at < $1`

	tag, err := r.exec(ctx, stmt, domain.StartOfDay(asOf))
	if err != nil {
		return 0, fmt.Errorf("mark overdue statuses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanLoans(rows pgx.Rows) ([]domain.Loan, error) {
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(
			&loan.ID,
			&loan.CopyID,
			&loan.PatronID,
			&loan.BorrowedAt,
			&loan.DueAt,
			&loan.ReturnedAt,
			&loan.RenewalCount,
			&loan.FineAmount,
		); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate loans: %w", rows.Err())
	}
	return loans, nil
}

// cachedStatus is the label written alongside the dates. Overdue labels
// are only ever produced by the reconciliation sweep; writes from the
// lifecycle operations use the non-time-dependent states.
func cachedStatus(loan domain.Loan) string {
	if loan.ReturnedAt != nil {
		return string(domain.LoanStatusReturned)
	}
	return string(domain.LoanStatusBorrowed)
}

func (r *CirculationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *CirculationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *CirculationRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
