package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Eyal-donut/products-scanner-server/db"
)

func TestResponseCodeFromError(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{db.NewNotFoundError("123"), http.StatusNotFound},
		{db.NewValidationError("please add a name"), http.StatusBadRequest},
		{db.NewDuplicateCodeError(1234567890123), http.StatusConflict},
		{db.NewUnavailableError(errors.New("connection refused")), http.StatusServiceUnavailable},
		{errors.New("something else"), http.StatusInternalServerError},
		// Wrapped tagged errors still resolve
		{pkgerrors.Wrap(db.NewNotFoundError("456"), "looking up product"), http.StatusNotFound},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ResponseCodeFromError(c.err))
	}
}

func TestErrorWritesEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	Error(recorder, db.NewNotFoundError("123"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"success": false, "message": "no document matching '123' found in the database"}`,
		recorder.Body.String())
}

func TestDataWritesEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	Data(recorder, http.StatusCreated, map[string]interface{}{"id": "abc"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t,
		`{"success": true, "data": {"id": "abc"}}`,
		recorder.Body.String())
}
