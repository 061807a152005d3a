package app

import (
	"context"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/clock"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/policy"
	"github.com/shopspring/decimal"
)

// CirculationRepository is the persistence gateway for loans and copies.
// WithTx must serialize concurrent checkouts of the same copy; the partial
// unique index on outstanding loans is the transactional backstop the
// policy engine assumes.
type CirculationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetCopyForUpdate(ctx context.Context, copyID string) (domain.Copy, error)
	GetPatron(ctx context.Context, patronID string) (domain.Patron, error)
	CountOutstandingLoans(ctx context.Context, patronID string) (int, error)
	CreateLoan(ctx context.Context, loan domain.Loan) error
	GetLoan(ctx context.Context, loanID string) (domain.Loan, error)
	GetLoanForUpdate(ctx context.Context, loanID string) (domain.Loan, error)
	UpdateLoan(ctx context.Context, loan domain.Loan) error
	SetCopyAvailability(ctx context.Context, copyID string, available bool) error
	ListLoansByPatron(ctx context.Context, patronID string) ([]domain.Loan, error)
	ListOverdueLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
}

// ConfigSource yields the current circulation parameters.
type ConfigSource interface {
	Params(ctx context.Context) (domain.Config, error)
}

type CirculationService struct {
	repo   CirculationRepository
	config ConfigSource
	clock  clock.Clock
}

func NewCirculationService(repo CirculationRepository, config ConfigSource, clk clock.Clock) *CirculationService {
	return &CirculationService{
		repo:   repo,
		config: config,
		clock:  clk,
	}
}

type CheckoutInput struct {
	CopyID   string
	PatronID string
}

// Checkout lends a copy to a patron: availability and patron standing are
// checked under a row lock, the loan is created, and the copy is flipped
// to unavailable, all in one transaction.
func (s *CirculationService) Checkout(ctx context.Context, in CheckoutInput) (domain.Loan, error) {
	if in.CopyID == "" || in.PatronID == "" {
		return domain.Loan{}, domain.ErrInvalidID
	}

	cfg, err := s.config.Params(ctx)
	if err != nil {
		return domain.Loan{}, err
	}

	now := s.clock.Now()
	var result domain.Loan

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		cp, err := s.repo.GetCopyForUpdate(txCtx, in.CopyID)
		if err != nil {
			return err
		}
		patron, err := s.repo.GetPatron(txCtx, in.PatronID)
		if err != nil {
			return err
		}
		outstanding, err := s.repo.CountOutstandingLoans(txCtx, in.PatronID)
		if err != nil {
			return err
		}

		loan, err := policy.Checkout(cp, patron, outstanding, now, cfg)
		if err != nil {
			return err
		}
		loan.ID = newUUID()

		if err := s.repo.CreateLoan(txCtx, loan); err != nil {
			return err
		}
		if err := s.repo.SetCopyAvailability(txCtx, cp.ID, false); err != nil {
			return err
		}

		result = loan
		return nil
	})
	if err != nil {
		return domain.Loan{}, err
	}
	return result, nil
}

// Renew extends an outstanding loan's due date under the configured
// renewal rules. The copy stays unavailable.
func (s *CirculationService) Renew(ctx context.Context, loanID string) (domain.Loan, error) {
	if loanID == "" {
		return domain.Loan{}, domain.ErrInvalidID
	}

	cfg, err := s.config.Params(ctx)
	if err != nil {
		return domain.Loan{}, err
	}

	now := s.clock.Now()
	var result domain.Loan

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		loan, err := s.repo.GetLoanForUpdate(txCtx, loanID)
		if err != nil {
			return err
		}

		renewed, err := policy.Renew(loan, now, cfg)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateLoan(txCtx, renewed); err != nil {
			return err
		}

		result = renewed
		return nil
	})
	if err != nil {
		return domain.Loan{}, err
	}
	return result, nil
}

// Return closes an outstanding loan, freezes its fine and releases the
// copy back into circulation.
func (s *CirculationService) Return(ctx context.Context, loanID string) (domain.Loan, error) {
	if loanID == "" {
		return domain.Loan{}, domain.ErrInvalidID
	}

	cfg, err := s.config.Params(ctx)
	if err != nil {
		return domain.Loan{}, err
	}

	now := s.clock.Now()
	var result domain.Loan

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		loan, err := s.repo.GetLoanForUpdate(txCtx, loanID)
		if err != nil {
			return err
		}

		closed, err := policy.Return(loan, now, cfg)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateLoan(txCtx, closed); err != nil {
			return err
		}
		if err := s.repo.SetCopyAvailability(txCtx, closed.CopyID, true); err != nil {
			return err
		}

		result = closed
		return nil
	})
	if err != nil {
		return domain.Loan{}, err
	}
	return result, nil
}

// LoanDetails is the read model for a loan: the raw record plus the
// projections (status, fine to date, days remaining) recomputed from the
// dates at read time.
type LoanDetails struct {
	Loan          domain.Loan
	Status        domain.LoanStatus
	FineToDate    decimal.Decimal
	DaysRemaining int
}

func (s *CirculationService) GetLoan(ctx context.Context, loanID string) (LoanDetails, error) {
	if loanID == "" {
		return LoanDetails{}, domain.ErrInvalidID
	}
	cfg, err := s.config.Params(ctx)
	if err != nil {
		return LoanDetails{}, err
	}
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return LoanDetails{}, err
	}
	return newLoanDetails(loan, s.clock.Now(), cfg), nil
}

func (s *CirculationService) ListPatronLoans(ctx context.Context, patronID string) ([]LoanDetails, error) {
	if patronID == "" {
		return nil, domain.ErrInvalidID
	}
	cfg, err := s.config.Params(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.repo.ListLoansByPatron(ctx, patronID)
	if err != nil {
		return nil, err
	}
	return loanDetailsList(loans, s.clock.Now(), cfg), nil
}

func (s *CirculationService) ListOverdue(ctx context.Context) ([]LoanDetails, error) {
	cfg, err := s.config.Params(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	loans, err := s.repo.ListOverdueLoans(ctx, now)
	if err != nil {
		return nil, err
	}
	return loanDetailsList(loans, now, cfg), nil
}

func newLoanDetails(loan domain.Loan, now time.Time, cfg domain.Config) LoanDetails {
	return LoanDetails{
		Loan:          loan,
		Status:        loan.Status(now),
		FineToDate:    policy.Fine(loan, now, cfg),
		DaysRemaining: loan.DaysRemaining(now),
	}
}

func loanDetailsList(loans []domain.Loan, now time.Time, cfg domain.Config) []LoanDetails {
	out := make([]LoanDetails, 0, len(loans))
	for _, loan := range loans {
		out = append(out, newLoanDetails(loan, now, cfg))
	}
	return out
}
