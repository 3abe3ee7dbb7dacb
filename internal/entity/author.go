package entity

import "slices"

type Author struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Books []string `json:"books"`
}

func (a *Author) Normalize() {
	if a.Books == nil {
		a.Books = []string{}
	}
}

// AddBook adds isbn to the back-reference list unless it is already present.
func (a *Author) AddBook(isbn string) {
	a.Books = addISBN(a.Books, isbn)
}

func (a *Author) RemoveBook(isbn string) {
	a.Books = slices.DeleteFunc(a.Books, func(v string) bool { return v == isbn })
}

func addISBN(list []string, isbn string) []string {
	if slices.Contains(list, isbn) {
		return list
	}
	return append(list, isbn)
}
