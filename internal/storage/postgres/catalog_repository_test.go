package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/testutil"
	"github.com/google/uuid"
)

func TestCatalogRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewCatalogRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("CreateBook and ListBooks", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		book := domain.Book{
			ID:     uuid.NewString(),
			Title:  "Dom Casmurro",
			Author: "Machado de Assis",
			ISBN:   "978-85-359-0277-5",
		}
		if err := repo.CreateBook(ctx, book); err != nil {
			t.Fatalf("create book: %v", err)
		}

		books, err := repo.ListBooks(ctx)
		if err != nil {
			t.Fatalf("list books: %v", err)
		}
		if len(books) != 1 || books[0].Title != "Dom Casmurro" || books[0].ISBN != book.ISBN {
			t.Fatalf("unexpected books: %+v", books)
		}
	})

	t.Run("CreateCopy rejects duplicate barcode and missing book", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		bookID, _ := testutil.InsertBookAndCopy(t, ctx, pool, "Dom Casmurro", "BC-001")

		dup := domain.Copy{ID: uuid.NewString(), BookID: bookID, Barcode: "BC-001", Available: true}
		if err := repo.CreateCopy(ctx, dup); !errors.Is(err, domain.ErrBarcodeAlreadyExists) {
			t.Fatalf("expected ErrBarcodeAlreadyExists, got %v", err)
		}

		orphan := domain.Copy{
			ID:        uuid.NewString(),
			BookID:    "00000000-0000-0000-0000-000000000001",
			Barcode:   "BC-002",
			Available: true,
		}
		if err := repo.CreateCopy(ctx, orphan); !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("ListCopiesByBook distinguishes empty from missing", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		bookID, copyID := testutil.InsertBookAndCopy(t, ctx, pool, "Dom Casmurro", "BC-001")

		copies, err := repo.ListCopiesByBook(ctx, bookID)
		if err != nil {
			t.Fatalf("list copies: %v", err)
		}
		if len(copies) != 1 || copies[0].ID != copyID {
			t.Fatalf("unexpected copies: %+v", copies)
		}

		_, err = repo.ListCopiesByBook(ctx, "00000000-0000-0000-0000-000000000001")
		if !errors.Is(err, domain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("CreatePatron maps unique violations per constraint", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		first := domain.Patron{
			ID:         uuid.NewString(),
			Name:       "Maria Silva",
			Email:      "maria@example.com",
			CardNumber: "C-1001",
			Active:     true,
		}
		if err := repo.CreatePatron(ctx, first); err != nil {
			t.Fatalf("create patron: %v", err)
		}

		sameCard := first
		sameCard.ID = uuid.NewString()
		sameCard.Email = "other@example.com"
		if err := repo.CreatePatron(ctx, sameCard); !errors.Is(err, domain.ErrCardAlreadyExists) {
			t.Fatalf("expected ErrCardAlreadyExists, got %v", err)
		}

		sameEmail := first
		sameEmail.ID = uuid.NewString()
		sameEmail.CardNumber = "C-1002"
		if err := repo.CreatePatron(ctx, sameEmail); !errors.Is(err, domain.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("SetPatronActive blocks and reinstates", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		patronID := testutil.InsertPatron(t, ctx, pool, "Maria Silva", "C-1001", true)

		if err := repo.SetPatronActive(ctx, patronID, false); err != nil {
			t.Fatalf("block patron: %v", err)
		}

		patrons, err := repo.ListPatrons(ctx)
		if err != nil {
			t.Fatalf("list patrons: %v", err)
		}
		if len(patrons) != 1 || patrons[0].Active {
			t.Fatalf("expected blocked patron, got %+v", patrons)
		}

		if err := repo.SetPatronActive(ctx, patronID, true); err != nil {
			t.Fatalf("reinstate patron: %v", err)
		}

		missing := "00000000-0000-0000-0000-000000000001"
		if err := repo.SetPatronActive(ctx, missing, false); !errors.Is(err, domain.ErrPatronNotFound) {
			t.Fatalf("expected ErrPatronNotFound, got %v", err)
		}
	})
}
