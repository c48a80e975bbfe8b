package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apierrors "github.com/yukikurage/task-manager-api/internal/errors"
	"github.com/yukikurage/task-manager-api/internal/services"
)

type validatable interface {
	Validate() error
}

// bindJSON decodes the body into req and runs its validation. It writes a
// 400 response and returns false on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			apierrors.BadRequestWithDetails(c, "Validation failed", validationDetails(verrs))
			return false
		}
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}

	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			apierrors.BadRequestWithDetails(c, "Validation failed", []string{err.Error()})
			return false
		}
	}
	return true
}

func validationDetails(verrs validator.ValidationErrors) []string {
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: failed on '%s' validation", fe.Field(), fe.Tag()))
	}
	return details
}

// parseID reads the :id path parameter, writing a 400 response when it is
// not a positive integer.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// respondServiceError maps a service error onto the HTTP error contract.
// Unclassified errors are logged and hidden from the client.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	default:
		_ = c.Error(err)
		log.Error("unhandled service error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
