package handlers

import (
	"errors"
	"net/http"

	"resourcecal/eventsourcing"
	"resourcecal/services/availability"
	"resourcecal/timespan"
	"resourcecal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, availability.ErrCorruptHistory):
		return http.StatusInternalServerError
	case errors.Is(err, availability.ErrInvalidArgument),
		errors.Is(err, timespan.ErrInvalidRange),
		errors.Is(err, timespan.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, availability.ErrBlockadeNotFound),
		errors.Is(err, availability.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, availability.ErrDuplicateID),
		errors.Is(err, availability.ErrBatchOwned),
		errors.Is(err, eventsourcing.ErrConcurrencyConflict),
		errors.Is(err, utils.ErrLockNotAcquired):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	details := err.Error()
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
		details = ""
	}
	utils.JSONError(c, status, message, details)
}
