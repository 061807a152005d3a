package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/app"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CatalogAPI is the surface of the catalog service the book and copy
// handlers need.
type CatalogAPI interface {
	CreateBook(ctx context.Context, in app.CreateBookInput) (domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	CreateCopy(ctx context.Context, in app.CreateCopyInput) (domain.Copy, error)
	ListCopies(ctx context.Context, bookID string) ([]domain.Copy, error)
}

// HandleCreateBook returns an HTTP handler for registering a book title.
func HandleCreateBook(svc CatalogAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		book, err := svc.CreateBook(r.Context(), app.CreateBookInput{
			Title:     req.Title,
			Author:    req.Author,
			Publisher: req.Publisher,
			ISBN:      req.ISBN,
		})
		if err != nil {
			if errors.Is(err, domain.ErrTitleRequired) {
				writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, newBookResponse(book))
	}
}

// HandleListBooks returns an HTTP handler listing the catalog.
func HandleListBooks(svc CatalogAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListBooks(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		out := make([]bookResponse, 0, len(books))
		for _, book := range books {
			out = append(out, newBookResponse(book))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleCreateCopy returns an HTTP handler for adding a physical copy of
// a book.
func HandleCreateCopy(svc CatalogAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCopyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		cp, err := svc.CreateCopy(r.Context(), app.CreateCopyInput{
			BookID:  chi.URLParam(r, "id"),
			Barcode: req.Barcode,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrBarcodeRequired):
				writeError(w, http.StatusBadRequest, codeBarcodeRequired, err.Error())
			case errors.Is(err, domain.ErrBookNotFound):
				writeError(w, http.StatusNotFound, codeBookNotFound, err.Error())
			case errors.Is(err, domain.ErrBarcodeAlreadyExists):
				writeError(w, http.StatusConflict, codeBarcodeAlreadyExists, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newCopyResponse(cp))
	}
}

// HandleListCopies returns an HTTP handler listing a book's copies.
func HandleListCopies(svc CatalogAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		copies, err := svc.ListCopies(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrBookNotFound):
				writeError(w, http.StatusNotFound, codeBookNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		out := make([]copyResponse, 0, len(copies))
		for _, cp := range copies {
			out = append(out, newCopyResponse(cp))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type createBookRequest struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
}

type bookResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
}

func newBookResponse(book domain.Book) bookResponse {
	return bookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Publisher: book.Publisher,
		ISBN:      book.ISBN,
	}
}

type createCopyRequest struct {
	Barcode string `json:"barcode"`
}

type copyResponse struct {
	ID        string `json:"id"`
	BookID    string `json:"book_id"`
	Barcode   string `json:"barcode"`
	Available bool   `json:"available"`
}

func newCopyResponse(cp domain.Copy) copyResponse {
	return copyResponse{
		ID:        cp.ID,
		BookID:    cp.BookID,
		Barcode:   cp.Barcode,
		Available: cp.Available,
	}
}
