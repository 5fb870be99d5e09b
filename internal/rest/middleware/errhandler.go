package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/sentry"
)

const defaultDisplayMessage = "An unexpected error occurred"

// ErrorHandler renders the last error attached to the context as an
// ierr.ErrorResponse. Server side failures are logged and reported.
func ErrorHandler(log *logger.Logger, sentrySvc *sentry.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		message := strings.TrimSpace(ierr.DisplayMessage(err))
		if message == "" {
			message = defaultDisplayMessage
		}

		response := ierr.ErrorResponse{
			Status:  status,
			Error:   http.StatusText(status),
			Message: message,
			Path:    c.Request.URL.Path,
		}
		if ierr.IsValidation(err) {
			response.Errors = fieldErrors(err)
		}

		if status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"status", status,
				"path", c.Request.URL.Path,
				"error", fmt.Sprintf("%+v", err),
			)
			if sentrySvc != nil {
				sentrySvc.CaptureException(c.Request.Context(), err)
			}
		} else {
			log.Debugw("request rejected", "status", status, "path", c.Request.URL.Path, "error", err)
		}

		c.JSON(status, response)
	}
}

// fieldErrors collects the per-field messages a request validator stored
// in the reportable details of err.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			raw, ok := strings.CutPrefix(payload, "__json__:")
			if !ok {
				continue
			}
			var details map[string]any
			if err := json.Unmarshal([]byte(raw), &details); err != nil {
				continue
			}
			for k, v := range details {
				fields[k] = fmt.Sprint(v)
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
