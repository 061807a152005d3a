package app

import (
	"context"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
)

type CatalogRepository interface {
	CreateBook(ctx context.Context, book domain.Book) error
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, bookID string) (domain.Book, error)
	CreateCopy(ctx context.Context, cp domain.Copy) error
	ListCopiesByBook(ctx context.Context, bookID string) ([]domain.Copy, error)
	CreatePatron(ctx context.Context, patron domain.Patron) error
	ListPatrons(ctx context.Context) ([]domain.Patron, error)
	SetPatronActive(ctx context.Context, patronID string, active bool) error
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type CreateBookInput struct {
	Title     string
	Author    string
	Publisher string
	ISBN      string
}

func (s *CatalogService) CreateBook(ctx context.Context, in CreateBookInput) (domain.Book, error) {
	if in.Title == "" {
		return domain.Book{}, domain.ErrTitleRequired
	}

	book := domain.Book{
		ID:        newUUID(),
		Title:     in.Title,
		Author:    in.Author,
		Publisher: in.Publisher,
		ISBN:      in.ISBN,
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.ListBooks(ctx)
}

type CreateCopyInput struct {
	BookID  string
	Barcode string
}

// CreateCopy registers one more physical copy of a book. New copies start
// available.
func (s *CatalogService) CreateCopy(ctx context.Context, in CreateCopyInput) (domain.Copy, error) {
	if in.BookID == "" {
		return domain.Copy{}, domain.ErrInvalidID
	}
	if in.Barcode == "" {
		return domain.Copy{}, domain.ErrBarcodeRequired
	}

	cp := domain.Copy{
		ID:        newUUID(),
		BookID:    in.BookID,
		Barcode:   in.Barcode,
		Available: true,
	}

	if err := s.repo.CreateCopy(ctx, cp); err != nil {
		return domain.Copy{}, err
	}
	return cp, nil
}

func (s *CatalogService) ListCopies(ctx context.Context, bookID string) ([]domain.Copy, error) {
	if bookID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListCopiesByBook(ctx, bookID)
}

type CreatePatronInput struct {
	Name       string
	Email      string
	CardNumber string
}

func (s *CatalogService) CreatePatron(ctx context.Context, in CreatePatronInput) (domain.Patron, error) {
	if in.Name == "" {
		return domain.Patron{}, domain.ErrPatronNameRequired
	}
	if in.CardNumber == "" {
		return domain.Patron{}, domain.ErrCardNumberRequired
	}

	patron := domain.Patron{
		ID:         newUUID(),
		Name:       in.Name,
		Email:      in.Email,
		CardNumber: in.CardNumber,
		Active:     true,
	}

	if err := s.repo.CreatePatron(ctx, patron); err != nil {
		return domain.Patron{}, err
	}
	return patron, nil
}

func (s *CatalogService) ListPatrons(ctx context.Context) ([]domain.Patron, error) {
	return s.repo.ListPatrons(ctx)
}

// BlockPatron suspends borrowing for a patron; existing loans keep
// accruing fines as usual.
func (s *CatalogService) BlockPatron(ctx context.Context, patronID string) error {
	if patronID == "" {
		return domain.ErrInvalidID
	}
	return s.repo.SetPatronActive(ctx, patronID, false)
}

func (s *CatalogService) ReinstatePatron(ctx context.Context, patronID string) error {
	if patronID == "" {
		return domain.ErrInvalidID
	}
	return s.repo.SetPatronActive(ctx, patronID, true)
}
