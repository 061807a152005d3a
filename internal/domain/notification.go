package domain

import "time"

// Notification is a message queued for a patron, written by the overdue
// sweep and read back through the API.
type Notification struct {
	ID        string
	PatronID  string
	Message   string
	CreatedAt time.Time
}
