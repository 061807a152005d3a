package domain

// Patron is a borrowing user, distinct from staff accounts.
// An inactive patron cannot check out or renew.
type Patron struct {
	ID         string
	Name       string
	Email      string
	CardNumber string
	Active     bool
}
