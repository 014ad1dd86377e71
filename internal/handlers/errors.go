package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/car_rental_backend/internal/apperrors"
	"github.com/SscSPs/car_rental_backend/internal/core/lifecycle"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidStateTransition):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondWithError writes the error response for err. Internal failures are
// logged at error level and hidden behind fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}

	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	body := gin.H{"error": err.Error()}
	var conflict *lifecycle.BookingConflictError
	if errors.As(err, &conflict) {
		body["conflictingRentalID"] = conflict.ConflictingRentalID
		body["conflictingStart"] = conflict.ConflictingStart
		body["conflictingEnd"] = conflict.ConflictingEnd
	}
	c.JSON(status, body)
}
