package entity

type Publication struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Books []string `json:"books"`
}

func (p *Publication) Normalize() {
	if p.Books == nil {
		p.Books = []string{}
	}
}

// AddBook adds isbn to the back-reference list unless it is already present.
func (p *Publication) AddBook(isbn string) {
	p.Books = addISBN(p.Books, isbn)
}
