package entity

import "slices"

// Book is a catalog document. JSON names are the public wire format and
// must not change.
type Book struct {
	ISBN         string   `json:"ISBN"`
	Title        string   `json:"title"`
	PubDate      string   `json:"PubDtae"`
	Language     string   `json:"language"`
	NumPage      int      `json:"numPage"`
	Authors      []int    `json:"author"`
	Publications []int    `json:"publications"`
	Category     []string `json:"category"`
}

// Normalize replaces nil lists with empty ones so documents always encode
// lists as [] rather than null.
func (b *Book) Normalize() {
	if b.Authors == nil {
		b.Authors = []int{}
	}
	if b.Publications == nil {
		b.Publications = []int{}
	}
	if b.Category == nil {
		b.Category = []string{}
	}
}

// AddAuthor adds id to the author list unless it is already present.
func (b *Book) AddAuthor(id int) {
	if !slices.Contains(b.Authors, id) {
		b.Authors = append(b.Authors, id)
	}
}

// RemoveAuthor drops every occurrence of id from the author list.
func (b *Book) RemoveAuthor(id int) {
	b.Authors = slices.DeleteFunc(b.Authors, func(v int) bool { return v == id })
}

// AddPublication adds id to the publication list unless it is already present.
func (b *Book) AddPublication(id int) {
	if !slices.Contains(b.Publications, id) {
		b.Publications = append(b.Publications, id)
	}
}
