package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/app"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
)

type stubCatalog struct {
	book          domain.Book
	books         []domain.Book
	cp            domain.Copy
	copies        []domain.Copy
	patron        domain.Patron
	patrons       []domain.Patron
	notifications []domain.Notification
	err           error
}

func (s *stubCatalog) CreateBook(context.Context, app.CreateBookInput) (domain.Book, error) {
	return s.book, s.err
}

func (s *stubCatalog) ListBooks(context.Context) ([]domain.Book, error) {
	return s.books, s.err
}

func (s *stubCatalog) CreateCopy(context.Context, app.CreateCopyInput) (domain.Copy, error) {
	return s.cp, s.err
}

func (s *stubCatalog) ListCopies(context.Context, string) ([]domain.Copy, error) {
	return s.copies, s.err
}

func (s *stubCatalog) CreatePatron(context.Context, app.CreatePatronInput) (domain.Patron, error) {
	return s.patron, s.err
}

func (s *stubCatalog) ListPatrons(context.Context) ([]domain.Patron, error) {
	return s.patrons, s.err
}

func (s *stubCatalog) BlockPatron(context.Context, string) error {
	return s.err
}

func (s *stubCatalog) ReinstatePatron(context.Context, string) error {
	return s.err
}

func (s *stubCatalog) ListNotificationsByPatron(context.Context, string) ([]domain.Notification, error) {
	return s.notifications, s.err
}

type stubSettings struct {
	cfg domain.Config
	err error
}

func (s *stubSettings) Params(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func (s *stubSettings) Update(_ context.Context, cfg domain.Config) (domain.Config, error) {
	if s.err != nil {
		return domain.Config{}, s.err
	}
	return cfg, nil
}

func TestHandleCreateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "created",
			body:           `{"title":"O Alienista","author":"Machado de Assis"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"title":"O Alienista"`,
		},
		{
			name:           "title required",
			body:           `{"author":"Machado de Assis"}`,
			serviceErr:     domain.ErrTitleRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeTitleRequired,
		},
		{
			name:           "invalid body",
			body:           `{"title"`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubCatalog{
				book: domain.Book{ID: "book-1", Title: "O Alienista", Author: "Machado de Assis"},
				err:  tt.serviceErr,
			}

			req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleCreateBook(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleCreatePatron_Conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "card number taken",
			serviceErr:     domain.ErrCardAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedSubstr: codeCardAlreadyExists,
		},
		{
			name:           "email taken",
			serviceErr:     domain.ErrEmailAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedSubstr: codeEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubCatalog{err: tt.serviceErr}

			body := `{"name":"Maria Silva","card_number":"C-1001"}`
			req := httptest.NewRequest(http.MethodPost, "/patrons", strings.NewReader(body))
			rec := httptest.NewRecorder()

			HandleCreatePatron(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleUpdateSettings_RejectsInvalid(t *testing.T) {
	t.Parallel()

	svc := &stubSettings{err: domain.ErrInvalidConfig}

	body := `{"loan_period_days":0,"max_renewals":3,"fine_per_day":"1.00","fine_cap":"50.00","grace_days":0,"days_for_block":0,"permit_renewal_when_late":false,"max_loans_per_patron":3}`
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	HandleUpdateSettings(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), codeInvalidConfiguration) {
		t.Fatalf("expected invalid configuration code, got %q", rec.Body.String())
	}
}

func TestHandleUpdateSettings_EchoesUpdate(t *testing.T) {
	t.Parallel()

	svc := &stubSettings{}

	body := `{"loan_period_days":21,"max_renewals":2,"fine_per_day":"0.50","fine_cap":"25.00","grace_days":1,"days_for_block":5,"permit_renewal_when_late":true,"max_loans_per_patron":5}`
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	HandleUpdateSettings(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	for _, want := range []string{`"loan_period_days":21`, `"fine_per_day":"0.5"`, `"permit_renewal_when_late":true`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("expected response to contain %q, got %q", want, rec.Body.String())
		}
	}
}
