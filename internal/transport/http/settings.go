package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

// SettingsAPI reads and updates the circulation parameters.
type SettingsAPI interface {
	Params(ctx context.Context) (domain.Config, error)
	Update(ctx context.Context, cfg domain.Config) (domain.Config, error)
}

// HandleGetSettings returns an HTTP handler for reading the circulation
// parameters.
func HandleGetSettings(svc SettingsAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Params(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, newSettingsResponse(cfg))
	}
}

// HandleUpdateSettings returns an HTTP handler for replacing the
// circulation parameters. The full parameter set is required; partial
// updates are not supported.
func HandleUpdateSettings(svc SettingsAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		cfg, err := svc.Update(r.Context(), domain.Config{
			LoanPeriodDays:        req.LoanPeriodDays,
			MaxRenewals:           req.MaxRenewals,
			FinePerDay:            req.FinePerDay,
			FineCap:               req.FineCap,
			GraceDays:             req.GraceDays,
			DaysForBlock:          req.DaysForBlock,
			PermitRenewalWhenLate: req.PermitRenewalWhenLate,
			MaxLoansPerPatron:     req.MaxLoansPerPatron,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidConfig) {
				writeError(w, http.StatusBadRequest, codeInvalidConfiguration, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, newSettingsResponse(cfg))
	}
}

type settingsRequest struct {
	LoanPeriodDays        int             `json:"loan_period_days"`
	MaxRenewals           int             `json:"max_renewals"`
	FinePerDay            decimal.Decimal `json:"fine_per_day"`
	FineCap               decimal.Decimal `json:"fine_cap"`
	GraceDays             int             `json:"grace_days"`
	DaysForBlock          int             `json:"days_for_block"`
	PermitRenewalWhenLate bool            `json:"permit_renewal_when_late"`
	MaxLoansPerPatron     int             `json:"max_loans_per_patron"`
}

type settingsResponse = settingsRequest

func newSettingsResponse(cfg domain.Config) settingsResponse {
	return settingsResponse{
		LoanPeriodDays:        cfg.LoanPeriodDays,
		MaxRenewals:           cfg.MaxRenewals,
		FinePerDay:            cfg.FinePerDay,
		FineCap:               cfg.FineCap,
		GraceDays:             cfg.GraceDays,
		DaysForBlock:          cfg.DaysForBlock,
		PermitRenewalWhenLate: cfg.PermitRenewalWhenLate,
		MaxLoansPerPatron:     cfg.MaxLoansPerPatron,
	}
}
