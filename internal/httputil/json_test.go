package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

func TestReadJSON(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Team A","rating":1.2}`},
		{name: "unknown fields", body: `{"name":"Team A","logo":"a.png"}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "syntax", body: `{"name":}`, wantErr: "badly-formed JSON"},
		{name: "truncated", body: `{"name":"Team A"`, wantErr: "badly-formed JSON"},
		{name: "wrong type", body: `{"rating":"high"}`, wantErr: `incorrect JSON type for field "rating"`},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: "single JSON value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			var dst payload
			err := ReadJSON(rr, req, &dst)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Team A", dst.Name)
		})
	}
}

func TestReadJSON_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()

	var dst payload
	assert.ErrorContains(t, ReadJSON(rr, req, &dst), "must not be larger than")
}

func TestWriteHelpers(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, "abc")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"id":"abc"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	OK(rr)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

	rr = httptest.NewRecorder()
	InternalServerError(rr, "Failed to get teams", assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "internal server error", body.Error)
}
