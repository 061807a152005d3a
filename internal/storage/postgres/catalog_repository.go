package postgres

import (
	"context"
	"fmt"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateBook(ctx context.Context, book domain.Book) error {
	const stmt = `
INSERT INTO books (id, title, author, publisher, isbn)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, book.ID, book.Title, book.Author, book.Publisher, book.ISBN)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	const query = `
SELECT id, title, author, publisher, isbn
FROM books
ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Publisher, &book.ISBN); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate books: %w", rows.Err())
	}
	return books, nil
}

func (r *CatalogRepository) GetBook(ctx context.Context, bookID string) (domain.Book, error) {
	const query = `SELECT id, title, author, publisher, isbn FROM books WHERE id = $1`

	var book domain.Book
	err := r.pool.QueryRow(ctx, query, bookID).Scan(&book.ID, &book.Title, &book.Author, &book.Publisher, &book.ISBN)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Book{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Book{}, domain.ErrBookNotFound
		}
		return domain.Book{}, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

func (r *CatalogRepository) CreateCopy(ctx context.Context, cp domain.Copy) error {
	const stmt = `
INSERT INTO copies (id, book_id, barcode, available)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, cp.ID, cp.BookID, cp.Barcode, cp.Available)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isUniqueViolation(err) {
			return domain.ErrBarcodeAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrBookNotFound
		}
		return fmt.Errorf("create copy: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListCopiesByBook(ctx context.Context, bookID string) ([]domain.Copy, error) {
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, existsQuery, bookID).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("check book: %w", err)
	}
	if !exists {
		return nil, domain.ErrBookNotFound
	}

	const query = `
SELECT id, book_id, barcode, available
FROM copies
WHERE book_id = $1
ORDER BY barcode ASC`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}
	defer rows.Close()

	var copies []domain.Copy
	for rows.Next() {
		var cp domain.Copy
		if err := rows.Scan(&cp.ID, &cp.BookID, &cp.Barcode, &cp.Available); err != nil {
			return nil, fmt.Errorf("scan copy: %w", err)
		}
		copies = append(copies, cp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate copies: %w", rows.Err())
	}
	return copies, nil
}

func (r *CatalogRepository) CreatePatron(ctx context.Context, patron domain.Patron) error {
	const stmt = `
INSERT INTO patrons (id, name, email, card_number, active)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, patron.ID, patron.Name, patron.Email, patron.CardNumber, patron.Active)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isUniqueViolationOn(err, "patrons_card_number_key") {
			return domain.ErrCardAlreadyExists
		}
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create patron: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListPatrons(ctx context.Context) ([]domain.Patron, error) {
	const query = `
SELECT id, name, email, card_number, active
FROM patrons
ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list patrons: %w", err)
	}
	defer rows.Close()

	var patrons []domain.Patron
	for rows.Next() {
		var p domain.Patron
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.CardNumber, &p.Active); err != nil {
			return nil, fmt.Errorf("scan patron: %w", err)
		}
		patrons = append(patrons, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate patrons: %w", rows.Err())
	}
	return patrons, nil
}

func (r *CatalogRepository) SetPatronActive(ctx context.Context, patronID string, active bool) error {
	const stmt = `UPDATE patrons SET active = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, patronID, active)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("set patron active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPatronNotFound
	}
	return nil
}
