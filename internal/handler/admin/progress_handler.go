package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ProgressHandler handles the sample-manufacturing workflow
type ProgressHandler struct {
	service service.SampleService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(service service.SampleService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

type progressStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=1 2 3"`
	StatusNote string `json:"status_note"`
}

// List handles GET /progress-status/list. Reading the list finalizes
// lateness: overdue waiting/in-progress rows flip to late before the
// response is built.
func (h *ProgressHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	rows, total, err := h.service.ListForManager(p.Page, p.Size, c.Query("status"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, rows, p.PageMeta(total))
}

// Get handles GET /progress-status/:id
func (h *ProgressHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, row, nil)
}

// SetStatus handles PATCH /progress-status/:id. status_note carries the
// tracking number when shipping.
func (h *ProgressHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req progressStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	row, err := h.service.SetStatus(id, req.Status, req.StatusNote)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, row, nil)
}

// Delete handles DELETE /progress-status/:id
func (h *ProgressHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
