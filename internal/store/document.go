package store

import (
	"encoding/json"
	"fmt"
)

// document is the constraint for the JSON documents kept in each collection.
type document[T any] interface {
	*T
	Normalize()
}

// collection names a document table and its lookup key column.
type collection struct {
	table string
	key   string
}

var (
	booksCollection        = collection{table: "books", key: "isbn"}
	authorsCollection      = collection{table: "authors", key: "entity_id"}
	publicationsCollection = collection{table: "publications", key: "entity_id"}
)

func decodeDoc[T any, P document[T]](raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode document: %w", err)
	}
	P(&v).Normalize()
	return v, nil
}

func encodeDoc[T any, P document[T]](v *T) ([]byte, error) {
	P(v).Normalize()
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}
