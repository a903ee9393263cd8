package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSendJSONOrLog(t *testing.T) {
	rec := httptest.NewRecorder()
	SendJSONOrLog(rec, discard, http.StatusCreated, map[string]int{"rows": 9})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rows": 9}`, rec.Body.String())
}

func TestSendJSONUnmarshalable(t *testing.T) {
	rec := httptest.NewRecorder()
	err := SendJSON(rec, http.StatusOK, make(chan int))

	assert.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestSendErrorOrLog(t *testing.T) {
	rec := httptest.NewRecorder()
	SendErrorOrLog(rec, discard, http.StatusBadRequest, errors.New("bad row"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "bad row"}`, rec.Body.String())
}

func TestInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalError(rec, discard, "boom", errors.New("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}
