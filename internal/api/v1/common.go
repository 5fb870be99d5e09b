package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/validator"
)

// parseID reads an integer path parameter
func parseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Invalid id: %s", raw).
			WithReportableDetails(map[string]any{name: raw}).
			Mark(ierr.ErrInvalidID)
	}
	return id, nil
}

// parseRoomNumber reads a room number path parameter
func parseRoomNumber(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	roomNumber, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Invalid room number: %s", raw).
			WithReportableDetails(map[string]any{name: raw}).
			Mark(ierr.ErrInvalidID)
	}
	return roomNumber, nil
}

// bindJSON decodes the request body into req and validates it
func bindJSON(c *gin.Context, req interface{ Validate() error }) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return ierr.WithError(err).
			WithHint(validator.ValidationMessage).
			Mark(ierr.ErrValidation)
	}
	return req.Validate()
}
