package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// principalFrom builds the acting principal from the claims the auth
// middleware stored on the context.
func principalFrom(c *gin.Context) service.Principal {
	principal := service.Principal{}
	if v, ok := c.Get("userID"); ok {
		principal.UserID = v.(uint)
	}
	if v, ok := c.Get("role"); ok {
		principal.Role = v.(string)
	}
	return principal
}

// pathID parses a uint path parameter; a false return means the response
// has already been written.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondError maps business errors onto HTTP statuses. Conflicts with the
// current facility/billing state come back 409 so the caller can retry with
// corrected input; validation failures are 422; unknown errors stay 500
// without leaking internals.
func respondError(c *gin.Context, err error) {
	var billingErr *apperrors.UnclearedBillingError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.As(err, &billingErr):
		utils.ErrorResponse(c, http.StatusConflict, billingErr.Error())
	case errors.Is(err, apperrors.ErrBedUnavailable),
		errors.Is(err, apperrors.ErrBedInUse),
		errors.Is(err, apperrors.ErrAdmissionClosed):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrPastAppointment),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
