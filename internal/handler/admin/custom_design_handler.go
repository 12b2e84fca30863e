package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// CustomDesignHandler handles the custom design review queue
type CustomDesignHandler struct {
	service service.CustomDesignService
}

// NewCustomDesignHandler creates a new CustomDesignHandler
func NewCustomDesignHandler(service service.CustomDesignService) *CustomDesignHandler {
	return &CustomDesignHandler{service: service}
}

type designStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=0 1 2 3"`
}

// List handles GET /custom-designs
// @Summary      커스텀 디자인 목록 조회
// @Tags         custom-designs
// @Produce      json
// @Param        status  query  string  false  "상태 필터 (0|1|2|3)"
// @Param        search  query  string  false  "아이템명/요청 메시지 검색"
// @Success      200  {object}  common.APIResponse
// @Router       /custom-designs [get]
func (h *CustomDesignHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	designs, total, err := h.service.ListAll(p.Page, p.Size, c.Query("status"), c.Query("search"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, designs, p.PageMeta(total))
}

// Get handles GET /custom-designs/:id
func (h *CustomDesignHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// SetStatus handles PATCH /custom-designs/:id/status. Moving to "3"
// assigns the item name and opens the sample work item.
func (h *CustomDesignHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req designStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	design, err := h.service.SetStatus(id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, design, nil)
}

// Delete handles DELETE /custom-designs/:id
func (h *CustomDesignHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user := middleware.GetUser(c)
	if err := h.service.Delete(c.Request.Context(), user.ID, id, true); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
