package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// RankHandler handles the manager dashboard ranking
type RankHandler struct {
	service service.RankService
}

// NewRankHandler creates a new RankHandler
func NewRankHandler(service service.RankService) *RankHandler {
	return &RankHandler{service: service}
}

// Dashboard handles GET /v1/rank/: today's top-10 content by views plus
// the custom-design and sample-request status tallies
func (h *RankHandler) Dashboard(c *gin.Context) {
	rank, err := h.service.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, rank, nil)
}
