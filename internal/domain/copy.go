package domain

// Copy is one physical, individually trackable instance of a book.
// Available flips to false on checkout and back to true on return; the
// storage layer guarantees at most one outstanding loan per copy.
type Copy struct {
	ID        string
	BookID    string
	Barcode   string
	Available bool
}
