package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/app"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// CirculationAPI is the surface of the circulation service the loan
// handlers need.
type CirculationAPI interface {
	Checkout(ctx context.Context, in app.CheckoutInput) (domain.Loan, error)
	Renew(ctx context.Context, loanID string) (domain.Loan, error)
	Return(ctx context.Context, loanID string) (domain.Loan, error)
	GetLoan(ctx context.Context, loanID string) (app.LoanDetails, error)
	ListPatronLoans(ctx context.Context, patronID string) ([]app.LoanDetails, error)
	ListOverdue(ctx context.Context) ([]app.LoanDetails, error)
}

// HandleCheckout returns an HTTP handler for lending a copy to a patron.
func HandleCheckout(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		loan, err := svc.Checkout(r.Context(), app.CheckoutInput{
			CopyID:   req.CopyID,
			PatronID: req.PatronID,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrCopyNotFound):
				writeError(w, http.StatusNotFound, codeCopyNotFound, err.Error())
			case errors.Is(err, domain.ErrPatronNotFound):
				writeError(w, http.StatusNotFound, codePatronNotFound, err.Error())
			case errors.Is(err, domain.ErrCopyUnavailable):
				writeError(w, http.StatusConflict, codeCopyUnavailable, err.Error())
			case errors.Is(err, domain.ErrPatronBlocked):
				writeError(w, http.StatusForbidden, codePatronBlocked, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newLoanResponse(loan))
	}
}

// HandleRenew returns an HTTP handler for renewing an outstanding loan.
func HandleRenew(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loan, err := svc.Renew(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrLoanNotFound):
				writeError(w, http.StatusNotFound, codeLoanNotFound, err.Error())
			case errors.Is(err, domain.ErrInvalidLoanState):
				writeError(w, http.StatusConflict, codeInvalidLoanState, err.Error())
			case errors.Is(err, domain.ErrRenewalLimitExceeded):
				writeError(w, http.StatusConflict, codeRenewalLimitExceeded, err.Error())
			case errors.Is(err, domain.ErrLoanOverdue):
				writeError(w, http.StatusConflict, codeLoanOverdue, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newLoanResponse(loan))
	}
}

// HandleReturn returns an HTTP handler for returning a loaned copy.
func HandleReturn(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loan, err := svc.Return(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrLoanNotFound):
				writeError(w, http.StatusNotFound, codeLoanNotFound, err.Error())
			case errors.Is(err, domain.ErrInvalidLoanState):
				writeError(w, http.StatusConflict, codeInvalidLoanState, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newLoanResponse(loan))
	}
}

// HandleGetLoan returns an HTTP handler for fetching one loan with its
// derived status and fine to date.
func HandleGetLoan(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := svc.GetLoan(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrLoanNotFound):
				writeError(w, http.StatusNotFound, codeLoanNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newLoanDetailsResponse(details))
	}
}

// HandleListOverdue returns an HTTP handler listing all overdue loans.
func HandleListOverdue(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loans, err := svc.ListOverdue(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		out := make([]loanDetailsResponse, 0, len(loans))
		for _, details := range loans {
			out = append(out, newLoanDetailsResponse(details))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleListPatronLoans returns an HTTP handler listing a patron's loans,
// newest first.
func HandleListPatronLoans(svc CirculationAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loans, err := svc.ListPatronLoans(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrPatronNotFound):
				writeError(w, http.StatusNotFound, codePatronNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		out := make([]loanDetailsResponse, 0, len(loans))
		for _, details := range loans {
			out = append(out, newLoanDetailsResponse(details))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type checkoutRequest struct {
	CopyID   string `json:"copy_id"`
	PatronID string `json:"patron_id"`
}

type loanResponse struct {
	ID           string          `json:"id"`
	CopyID       string          `json:"copy_id"`
	PatronID     string          `json:"patron_id"`
	BorrowedAt   time.Time       `json:"borrowed_at"`
	DueAt        time.Time       `json:"due_at"`
	ReturnedAt   *time.Time      `json:"returned_at,omitempty"`
	RenewalCount int             `json:"renewal_count"`
	Status       string          `json:"status"`
	FineAmount   decimal.Decimal `json:"fine_amount"`
}

type loanDetailsResponse struct {
	loanResponse
	FineToDate    decimal.Decimal `json:"fine_to_date"`
	DaysRemaining int             `json:"days_remaining"`
}

func newLoanResponse(loan domain.Loan) loanResponse {
	status := domain.LoanStatusBorrowed
	if loan.ReturnedAt != nil {
		status = domain.LoanStatusReturned
	}
	return loanResponse{
		ID:           loan.ID,
		CopyID:       loan.CopyID,
		PatronID:     loan.PatronID,
		BorrowedAt:   loan.BorrowedAt,
		DueAt:        loan.DueAt,
		ReturnedAt:   loan.ReturnedAt,
		RenewalCount: loan.RenewalCount,
		Status:       string(status),
		FineAmount:   loan.FineAmount,
	}
}

func newLoanDetailsResponse(details app.LoanDetails) loanDetailsResponse {
	resp := newLoanResponse(details.Loan)
	resp.Status = string(details.Status)
	return loanDetailsResponse{
		loanResponse:  resp,
		FineToDate:    details.FineToDate,
		DaysRemaining: details.DaysRemaining,
	}
}
