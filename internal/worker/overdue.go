package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/app"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/clock"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/policy"
	"github.com/google/uuid"
)

// LoanSource is the slice of the circulation store the sweep reads from.
type LoanSource interface {
	MarkOverdueStatuses(ctx context.Context, asOf time.Time) (int64, error)
	ListOverdueLoans(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
}

// NotificationSink receives the messages the sweep produces.
type NotificationSink interface {
	CreateNotification(ctx context.Context, n domain.Notification) error
}

// OverdueNotifier periodically reconciles cached loan statuses and queues
// a late notice per overdue loan with the fine accrued so far.
type OverdueNotifier struct {
	loans         LoanSource
	notifications NotificationSink
	config        app.ConfigSource
	clock         clock.Clock
	interval      time.Duration
	logger        *log.Logger
}

func NewOverdueNotifier(
	loans LoanSource,
	notifications NotificationSink,
	config app.ConfigSource,
	clk clock.Clock,
	interval time.Duration,
	logger *log.Logger,
) *OverdueNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &OverdueNotifier{
		loans:         loans,
		notifications: notifications,
		config:        config,
		clock:         clk,
		interval:      interval,
		logger:        logger,
	}
}

// Start runs an immediate sweep, then one per interval until the context
// is cancelled.
func (n *OverdueNotifier) Start(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	if err := n.Sweep(ctx); err != nil {
		n.logger.Printf("overdue sweep error: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := n.Sweep(ctx); err != nil {
				n.logger.Printf("overdue sweep error: %v", err)
			}
		}
	}
}

// Sweep performs one pass: cached statuses are reconciled, then every
// overdue loan gets one notification carrying days late and fine to date.
func (n *OverdueNotifier) Sweep(ctx context.Context) error {
	now := n.clock.Now()

	cfg, err := n.config.Params(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	marked, err := n.loans.MarkOverdueStatuses(ctx, now)
	if err != nil {
		return fmt.Errorf("mark overdue: %w", err)
	}
	if marked > 0 {
		n.logger.Printf("overdue sweep: marked %d loans overdue", marked)
	}

	loans, err := n.loans.ListOverdueLoans(ctx, now)
	if err != nil {
		return fmt.Errorf("list overdue: %w", err)
	}

	for _, loan := range loans {
		daysLate := domain.DaysBetween(loan.DueAt, now)
		fine := policy.Fine(loan, now, cfg)

		notice := domain.Notification{
			ID:       uuid.NewString(),
			PatronID: loan.PatronID,
			Message: fmt.Sprintf(
				"Loan %s is %d day(s) overdue. Fine to date: %s. Please return the copy.",
				loan.ID, daysLate, fine.StringFixed(2),
			),
			CreatedAt: now,
		}
		if err := n.notifications.CreateNotification(ctx, notice); err != nil {
			return fmt.Errorf("create notification for loan %s: %w", loan.ID, err)
		}
	}
	return nil
}
