package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lead.ErrLeadNotFound):
		response.NotFound(c, "lead not found")
	case errors.Is(err, lead.ErrDuplicatePhone):
		response.Conflict(c, "phone already exists")
	case errors.Is(err, lead.ErrInvalidPhone):
		response.Error(c, err, nil)
	case errors.Is(err, lead.ErrOptedOut):
		response.Conflict(c, "lead has opted out")
	default:
		response.InternalError(c, err)
	}
}
