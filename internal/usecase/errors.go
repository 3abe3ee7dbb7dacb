package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no document matches the requested key.
var ErrNotFound = errors.New("not found")

// NotFoundError names the missing document. It matches ErrNotFound under
// errors.Is.
type NotFoundError struct {
	Entity string // book, author, publication
	Field  string // ISBN, id, category
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %q not found", e.Entity, e.Field, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Message is the client-facing text, e.g. "No book found for the ISBN of 123".
func (e *NotFoundError) Message() string {
	return fmt.Sprintf("No %s found for the %s of %s", e.Entity, e.Field, e.Key)
}

func BookNotFound(isbn string) error {
	return &NotFoundError{Entity: "book", Field: "ISBN", Key: isbn}
}

func AuthorNotFound(id int) error {
	return &NotFoundError{Entity: "author", Field: "id", Key: fmt.Sprint(id)}
}

func PublicationNotFound(id int) error {
	return &NotFoundError{Entity: "publication", Field: "id", Key: fmt.Sprint(id)}
}
