package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"booky/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: `7`, want: 7},
		{in: `"7"`, want: 7},
		{in: `" 12 "`, want: 12},
		{in: `"seven"`, wantErr: true},
		{in: `7.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n flexInt
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, flexInt(tt.want), n)
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	t.Run("empty body fails validation", func(t *testing.T) {
		var req bookTitleRequest
		err := decodeRequest(httptest.NewRequest(http.MethodPut, "/", nil), &req)

		var bad *badRequestError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "bookTitle is required", bad.msg)
	})

	t.Run("empty title is allowed", func(t *testing.T) {
		var req bookTitleRequest
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"bookTitle":""}`))

		require.NoError(t, decodeRequest(r, &req))
		assert.Equal(t, "", *req.BookTitle)
	})

	t.Run("form with legacy publication id", func(t *testing.T) {
		var req linkPublicationRequest
		r := testutil.NewFormRequest(http.MethodPut, "/", url.Values{"pubID": {"3"}})

		require.NoError(t, decodeRequest(r, &req))
		assert.Equal(t, 3, req.id())
	})

	t.Run("legacy publication list", func(t *testing.T) {
		var req linkPublicationRequest
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"pubID":[3,1]}`))

		require.NoError(t, decodeRequest(r, &req))
		assert.Equal(t, flexIntList{3, 1}, req.LegacyPubID)
		assert.Equal(t, 3, req.id())
	})

	t.Run("oversized body", func(t *testing.T) {
		var req newBookRequest
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"newBook":{"title":"`+strings.Repeat("x", 64)+`"}}`))
		w := httptest.NewRecorder()
		r.Body = http.MaxBytesReader(w, r.Body, 16)

		err := decodeRequest(r, &req)

		var bad *badRequestError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "request body too large", bad.msg)
		assert.Equal(t, http.StatusRequestEntityTooLarge, bad.status)
	})
}
