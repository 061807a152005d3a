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
)

// PatronAPI is the surface of the catalog service the patron handlers
// need.
type PatronAPI interface {
	CreatePatron(ctx context.Context, in app.CreatePatronInput) (domain.Patron, error)
	ListPatrons(ctx context.Context) ([]domain.Patron, error)
	BlockPatron(ctx context.Context, patronID string) error
	ReinstatePatron(ctx context.Context, patronID string) error
}

// NotificationLister reads back the messages queued for a patron.
type NotificationLister interface {
	ListNotificationsByPatron(ctx context.Context, patronID string) ([]domain.Notification, error)
}

// HandleCreatePatron returns an HTTP handler for registering a patron.
func HandleCreatePatron(svc PatronAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatronRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		patron, err := svc.CreatePatron(r.Context(), app.CreatePatronInput{
			Name:       req.Name,
			Email:      req.Email,
			CardNumber: req.CardNumber,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrPatronNameRequired):
				writeError(w, http.StatusBadRequest, codePatronNameRequired, err.Error())
			case errors.Is(err, domain.ErrCardNumberRequired):
				writeError(w, http.StatusBadRequest, codeCardNumberRequired, err.Error())
			case errors.Is(err, domain.ErrCardAlreadyExists):
				writeError(w, http.StatusConflict, codeCardAlreadyExists, err.Error())
			case errors.Is(err, domain.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, codeEmailAlreadyExists, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newPatronResponse(patron))
	}
}

// HandleListPatrons returns an HTTP handler listing registered patrons.
func HandleListPatrons(svc PatronAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patrons, err := svc.ListPatrons(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		out := make([]patronResponse, 0, len(patrons))
		for _, patron := range patrons {
			out = append(out, newPatronResponse(patron))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleBlockPatron returns an HTTP handler that suspends a patron's
// borrowing privileges.
func HandleBlockPatron(svc PatronAPI) http.HandlerFunc {
	return patronActiveHandler(svc.BlockPatron)
}

// HandleReinstatePatron returns an HTTP handler that restores a patron's
// borrowing privileges.
func HandleReinstatePatron(svc PatronAPI) http.HandlerFunc {
	return patronActiveHandler(svc.ReinstatePatron)
}

func patronActiveHandler(apply func(ctx context.Context, patronID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := apply(r.Context(), chi.URLParam(r, "id"))
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

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleListNotifications returns an HTTP handler listing a patron's
// queued notifications, newest first.
func HandleListNotifications(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := svc.ListNotificationsByPatron(r.Context(), chi.URLParam(r, "id"))
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

		out := make([]notificationResponse, 0, len(notifications))
		for _, n := range notifications {
			out = append(out, notificationResponse{
				ID:        n.ID,
				PatronID:  n.PatronID,
				Message:   n.Message,
				CreatedAt: n.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type createPatronRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CardNumber string `json:"card_number"`
}

type patronResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	CardNumber string `json:"card_number"`
	Active     bool   `json:"active"`
}

func newPatronResponse(patron domain.Patron) patronResponse {
	return patronResponse{
		ID:         patron.ID,
		Name:       patron.Name,
		Email:      patron.Email,
		CardNumber: patron.CardNumber,
		Active:     patron.Active,
	}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	PatronID  string    `json:"patron_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
