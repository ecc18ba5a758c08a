package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailcore/cashdesk/internal/apperrors"
)

// respondError maps service errors onto the HTTP error taxonomy: 400 for bad
// input, 404 for missing resources, 409 for shift-state and concurrency
// conflicts, 422 for balance guard rejections, 500 otherwise.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var insufficientErr *apperrors.InsufficientFundsError
	var depositErr *apperrors.DepositExceedsAvailableError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrNoOpenShift):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrShiftNotOpen),
		errors.Is(err, apperrors.ErrShiftAlreadyOpen),
		errors.Is(err, apperrors.ErrShiftBusy),
		errors.Is(err, apperrors.ErrTxSerialization),
		errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &insufficientErr):
		logger.Warn("Insufficient funds", slog.String("max_egress", insufficientErr.MaxEgress.String()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     insufficientErr.Error(),
			"maxEgress": insufficientErr.MaxEgress,
		})
	case errors.As(err, &depositErr):
		logger.Warn("Deposit exceeds available cash", slog.String("max_deposit", depositErr.MaxDeposit.String()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      depositErr.Error(),
			"maxDeposit": depositErr.MaxDeposit,
		})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
