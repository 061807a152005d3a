package domain

// Book is a catalog record; physical inventory is tracked per Copy.
type Book struct {
	ID        string
	Title     string
	Author    string
	Publisher string
	ISBN      string
}
