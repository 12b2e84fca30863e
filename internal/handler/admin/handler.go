// Package admin is the Manager HTTP tree: catalog management, design
// review, sample workflow, and account administration.
package admin

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
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, 404, "Not found", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, 403, "Forbidden", err)
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, 401, "Unauthenticated", err)
	case errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrUsernameTaken),
		errors.Is(err, common.ErrAccountCodeTaken),
		errors.Is(err, service.ErrBrandNameTaken),
		errors.Is(err, service.ErrColorNameTaken),
		errors.Is(err, service.ErrImageNameTaken),
		errors.Is(err, service.ErrProductNameTaken),
		errors.Is(err, service.ErrPortfolioNameTaken):
		common.ErrorResponse(c, 409, err.Error(), nil)
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrHasDependents),
		errors.Is(err, service.ErrBrandInUse),
		errors.Is(err, service.ErrCountryInUse),
		errors.Is(err, service.ErrColorNameRequired),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrImageNameMissing),
		errors.Is(err, service.ErrUnsupportedImageType),
		errors.Is(err, service.ErrInvalidImageData),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDesignLocked):
		common.ErrorResponse(c, 400, err.Error(), nil)
	default:
		common.ErrorResponse(c, 500, "Internal error", err)
	}
}
