package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/pkg"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameter", http.StatusBadRequest)
)

// mapError translates the domain taxonomy into API errors.
func mapError(err error) *pkg.AppError {
	var stockErr *entities.StockError
	switch {
	case errors.As(err, &stockErr):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", fmt.Sprintf("Insufficient stock for product %s: available %d, requested %d", stockErr.ProductID, stockErr.Available, stockErr.Requested), err, http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidReference):
		return pkg.NewDomainError("INVALID_REFERENCE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// queryDate reads an optional yyyy-mm-dd parameter.
func queryDate(c *gin.Context, key string) (time.Time, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}

func queryBool(c *gin.Context, key string) (bool, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
