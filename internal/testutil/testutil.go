package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"booky/internal/entity"
)

// TestBook is a fixture book linked to TestAuthor and TestPublication.
var TestBook = entity.Book{
	ISBN:         "12345ONE",
	Title:        "Getting started with MERN",
	PubDate:      "2021-07-07",
	Language:     "en",
	NumPage:      250,
	Authors:      []int{1},
	Publications: []int{1},
	Category:     []string{"fiction", "programming", "tech", "web dev"},
}

// TestBookTwo shares no references with TestBook.
var TestBookTwo = entity.Book{
	ISBN:         "12345Two",
	Title:        "Getting started with Python",
	PubDate:      "2021-07-07",
	Language:     "en",
	NumPage:      250,
	Authors:      []int{1},
	Publications: []int{},
	Category:     []string{"fiction", "tech", "web dev"},
}

var TestAuthor = entity.Author{
	ID:    1,
	Name:  "pavan",
	Books: []string{"12345ONE", "12345Two"},
}

var TestAuthorTwo = entity.Author{
	ID:    2,
	Name:  "Deepak",
	Books: []string{},
}

var TestPublication = entity.Publication{
	ID:    1,
	Name:  "Chakra",
	Books: []string{"12345ONE"},
}

var TestPublicationTwo = entity.Publication{
	ID:    2,
	Name:  "Vickie Publications",
	Books: []string{},
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewFormRequest creates a request with an urlencoded body
func NewFormRequest(method, path string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
	Raw    []byte
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
		Raw:    bodyBytes,
	}
}

// DecodeField unmarshals one top-level field of a JSON object into dst.
func DecodeField(raw []byte, key string, dst any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return err
	}
	field, ok := obj[key]
	if !ok {
		return io.ErrUnexpectedEOF
	}
	return json.Unmarshal(field, dst)
}
