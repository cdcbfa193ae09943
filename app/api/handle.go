package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mytheresa/product-catalog/models"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing the response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. Any returned error is converted into an
// error envelope; unexpected errors are logged and reported as 500.
func Handle(logger *zap.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status, detail := ErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}

		if werr := WriteJSON(w, status, ErrorResponse{Success: false, Error: detail}); werr != nil {
			logger.Warn("failed to write error response", zap.Error(werr))
		}
	}
}

// ErrorStatus maps an error to its HTTP status and public error detail.
func ErrorStatus(err error) (int, ErrorDetail) {
	switch {
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrCategoryNotFound):
		return http.StatusNotFound, ErrorDetail{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, ErrInvalidBody), errors.Is(err, models.ErrInvalidQuery), errors.Is(err, models.ErrInvalidUpdate):
		return http.StatusBadRequest, ErrorDetail{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, ErrorDetail{Code: "ALREADY_EXISTS", Message: "resource already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusUnprocessableEntity, ErrorDetail{Code: "FOREIGN_KEY_VIOLATION", Message: "referenced resource does not exist"}
	default:
		return http.StatusInternalServerError, ErrorDetail{Code: "INTERNAL_ERROR", Message: "an internal error occurred"}
	}
}
