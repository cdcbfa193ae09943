package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/mytheresa/product-catalog/models"
)

func TestHandle(t *testing.T) {
	testCases := []struct {
		name               string
		handler            HandlerFunc
		expectedStatusCode int
		expectedCode       string
		expectedLogs       int
	}{
		{
			name: "Not found",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return models.ErrProductNotFound
			},
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "NOT_FOUND",
		},
		{
			name: "Wrapped invalid query",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return fmt.Errorf("%w: page must be a positive integer", models.ErrInvalidQuery)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_INPUT",
		},
		{
			name: "Invalid update",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return fmt.Errorf("%w: name cannot be null", models.ErrInvalidUpdate)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_INPUT",
		},
		{
			name: "Invalid body",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return fmt.Errorf("%w: unexpected EOF", ErrInvalidBody)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_INPUT",
		},
		{
			name: "Duplicate key",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return gorm.ErrDuplicatedKey
			},
			expectedStatusCode: http.StatusConflict,
			expectedCode:       "ALREADY_EXISTS",
		},
		{
			name: "Foreign key violation",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return gorm.ErrForeignKeyViolated
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "FOREIGN_KEY_VIOLATION",
		},
		{
			name: "Unexpected error is logged",
			handler: func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("db down")
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedLogs:       1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			req := httptest.NewRequest("GET", "/products", nil)
			rec := httptest.NewRecorder()

			Handle(zap.New(core), tc.handler)(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.expectedCode, resp.Error.Code)
			assert.Equal(t, tc.expectedLogs, logs.Len())
		})
	}
}

func TestHandle_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", nil)

	Handle(zap.NewNop(), func(w http.ResponseWriter, r *http.Request) error {
		return Created(w, map[string]string{"id": "p1"})
	})(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"p1"}}`, rec.Body.String())
}

func TestOK_EmptyListIsKept(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, OK(rec, []string{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}
