package domain

// Employee is a staff account used to authenticate against the API.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}
