package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ColorHandler handles color catalog management
type ColorHandler struct {
	service service.ColorService
}

// NewColorHandler creates a new ColorHandler
func NewColorHandler(service service.ColorService) *ColorHandler {
	return &ColorHandler{service: service}
}

type colorRequest struct {
	Name   string `json:"color_name"`
	Values string `json:"color_values"`
}

// List handles GET /colors. Sorting by color_name uses the natural
// catalog order.
func (h *ColorHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	colors, total, err := h.service.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, colors, p.PageMeta(total))
}

// Get handles GET /colors/:id
func (h *ColorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	color, err := h.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, color, nil)
}

// Create handles POST /colors
func (h *ColorHandler) Create(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	color, err := h.service.Create(req.Name, req.Values)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, color)
}

// Update handles PUT /colors/:id
func (h *ColorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	color, err := h.service.Update(id, req.Name, req.Values)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, color, nil)
}

// Delete handles DELETE /colors/:id. Colors still referenced by any
// design answer 400 with the referencing category.
func (h *ColorHandler) Delete(c *gin.Context) {
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
