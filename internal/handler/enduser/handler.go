// Package enduser is the Enduser HTTP tree: design composition, carts,
// sample requests, shares, and localized catalog reads.
package enduser

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// pathID parses the :id path segment
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid id", err)
		return 0, false
	}
	return uint(id), true
}

// fail maps service errors onto the uniform status-code contract
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, 404, "Not found", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, 403, "Forbidden", err)
	case errors.Is(err, service.ErrCartDuplicate):
		common.ErrorResponse(c, 409, err.Error(), nil)
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidCartItem),
		errors.Is(err, service.ErrShareItemInvalid),
		errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrRequestNotDeletable),
		errors.Is(err, service.ErrDesignLocked),
		errors.Is(err, service.ErrUnsupportedImageType),
		errors.Is(err, service.ErrInvalidImageData):
		common.ErrorResponse(c, 400, err.Error(), nil)
	default:
		common.ErrorResponse(c, 500, "Internal error", err)
	}
}
