package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"booky/internal/entity"
)

// badRequestError is reported to the client with its status and message.
type badRequestError struct {
	status int
	msg    string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// formDecoder is implemented by envelopes that also accept
// application/x-www-form-urlencoded bodies.
type formDecoder interface {
	fromForm(url.Values) error
}

// decodeRequest fills dst from a JSON or form body and validates it.
func decodeRequest(r *http.Request, dst any) error {
	if isForm(r) {
		fd, ok := dst.(formDecoder)
		if !ok {
			return badRequest("form bodies are not supported here, send JSON")
		}
		if err := r.ParseForm(); err != nil {
			return badRequest("invalid form body")
		}
		if err := fd.fromForm(r.PostForm); err != nil {
			return err
		}
	} else if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &badRequestError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
		}
		return badRequest("invalid JSON body")
	}

	if verrs := ValidateStruct(dst); len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, v := range verrs {
			msgs = append(msgs, v.Message)
		}
		return badRequest("%s", strings.Join(msgs, "; "))
	}
	return nil
}

func isForm(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/x-www-form-urlencoded"
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	var raw json.Number
	if err := json.Unmarshal(b, &raw); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = json.Number(strings.TrimSpace(s))
	}
	v, err := strconv.Atoi(raw.String())
	if err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

func formInt(form url.Values, key string) (*flexInt, error) {
	if !form.Has(key) {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(form.Get(key)))
	if err != nil {
		return nil, badRequest("%s must be a number", key)
	}
	n := flexInt(v)
	return &n, nil
}

type newBookRequest struct {
	NewBook *entity.Book `json:"newBook" validate:"required"`
}

type newAuthorRequest struct {
	NewAuthor *entity.Author `json:"newAuthor" validate:"required"`
}

type newPublicationRequest struct {
	NewPublication *entity.Publication `json:"newPublication" validate:"required"`
}

type bookTitleRequest struct {
	BookTitle *string `json:"bookTitle" validate:"required"`
}

func (req *bookTitleRequest) fromForm(form url.Values) error {
	if form.Has("bookTitle") {
		title := form.Get("bookTitle")
		req.BookTitle = &title
	}
	return nil
}

type linkAuthorRequest struct {
	NewAuthor *flexInt `json:"newAuthor" validate:"required"`
}

func (req *linkAuthorRequest) fromForm(form url.Values) (err error) {
	req.NewAuthor, err = formInt(form, "newAuthor")
	return err
}

// flexIntList accepts what older clients send as pubID: a number, a numeric
// string or an array of either. An empty array decodes to nil.
type flexIntList []int

func (l *flexIntList) UnmarshalJSON(b []byte) error {
	var items []flexInt
	if err := json.Unmarshal(b, &items); err != nil {
		var one flexInt
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		items = []flexInt{one}
	}
	*l = nil
	for _, v := range items {
		*l = append(*l, int(v))
	}
	return nil
}

// linkPublicationRequest takes the id as pubId. Older clients send pubID,
// often as the book's whole publication list; its first entry is used when
// pubId is absent.
type linkPublicationRequest struct {
	PubID       *flexInt    `json:"pubId" validate:"required_without=LegacyPubID"`
	LegacyPubID flexIntList `json:"pubID"`
}

func (req *linkPublicationRequest) fromForm(form url.Values) (err error) {
	if req.PubID, err = formInt(form, "pubId"); err != nil {
		return err
	}
	for _, raw := range form["pubID"] {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return badRequest("pubID must be a number")
		}
		req.LegacyPubID = append(req.LegacyPubID, v)
	}
	return nil
}

func (req *linkPublicationRequest) id() int {
	if req.PubID != nil {
		return int(*req.PubID)
	}
	return req.LegacyPubID[0]
}
