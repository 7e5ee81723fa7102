package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/smart_pocket/internal/apperrors"
	"github.com/SscSPs/smart_pocket/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrIncompleteReceipt), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrParentTransactionNotFound),
		errors.Is(err, apperrors.ErrChildBatchRejected),
		errors.Is(err, apperrors.ErrUpstreamServer),
		errors.Is(err, apperrors.ErrUpstreamClient),
		errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the uniform failure body. Server-side failures get a generic message
// prefixed with action; client errors echo the error text.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := statusForError(err)
	msg := action + ": " + err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(action, slog.String("error", err.Error()))
		msg = action
	} else {
		logger.Warn(action, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, dto.NewErrorResponse(msg))
}
