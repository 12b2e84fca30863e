package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// DatabaseHandler handles the superadmin database-management surface
type DatabaseHandler struct {
	service service.DatabaseService
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(service service.DatabaseService) *DatabaseHandler {
	return &DatabaseHandler{service: service}
}

// Tables handles GET /admin/database/tables
func (h *DatabaseHandler) Tables(c *gin.Context) {
	tables, err := h.service.Tables()
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, tables, nil)
}

// Truncate handles DELETE /admin/database/tables/:table. Only the
// allowlisted tables can be wiped.
func (h *DatabaseHandler) Truncate(c *gin.Context) {
	table := c.Param("table")
	if err := h.service.Truncate(table); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}

// RegenerateItemNames handles POST /admin/database/item-names/:id to
// re-sequence a user's completed design names
func (h *DatabaseHandler) RegenerateItemNames(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	renamed, err := h.service.RegenerateItemNames(userID)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"renamed": renamed}, nil)
}
