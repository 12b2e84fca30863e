package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// CartHandler handles the sample-request basket
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type cartItemRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// List handles GET /enduser/cart
func (h *CartHandler) List(c *gin.Context) {
	user := middleware.GetUser(c)
	items, err := h.service.List(user.ID, c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, items, nil)
}

// Add handles POST /enduser/cart
func (h *CartHandler) Add(c *gin.Context) {
	user := middleware.GetUser(c)
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	item, err := h.service.Add(user.ID, req.ItemName, req.Category)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, item)
}

// Remove handles DELETE /enduser/cart
func (h *CartHandler) Remove(c *gin.Context) {
	user := middleware.GetUser(c)
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	if err := h.service.Remove(user.ID, req.ItemName, req.Category); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
