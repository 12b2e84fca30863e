package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// SampleHandler handles the owner side of the sample-request workflow
type SampleHandler struct {
	service service.SampleService
}

// NewSampleHandler creates a new SampleHandler
func NewSampleHandler(service service.SampleService) *SampleHandler {
	return &SampleHandler{service: service}
}

type sampleRequest struct {
	ItemName         string `json:"item_name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	Note             string `json:"note"`
	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address"`
}

type bulkSampleRequest struct {
	Note             string `json:"note"`
	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address"`
}

// Request handles POST /enduser/sample. The cart row is consumed
// atomically with the work-item insert.
func (h *SampleHandler) Request(c *gin.Context) {
	user := middleware.GetUser(c)
	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}

	row, err := h.service.Request(user.ID, service.RequestSampleInput{
		ItemName: req.ItemName,
		Category: req.Category,
		Note:     req.Note,
		Recipient: service.Recipient{
			Name:    req.RecipientName,
			Phone:   req.RecipientPhone,
			Address: req.RecipientAddress,
		},
	})
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, row)
}

// RequestAllCustomDesigns handles POST /enduser/sample/custom-design
func (h *SampleHandler) RequestAllCustomDesigns(c *gin.Context) {
	h.requestAll(c, domain.CategoryCustomDesign)
}

// RequestAllPortfolios handles POST /enduser/sample/portfolio
func (h *SampleHandler) RequestAllPortfolios(c *gin.Context) {
	h.requestAll(c, domain.CategoryPortfolio)
}

// requestAll materializes every basket row of the category; failures
// are collected, never aborting the iteration
func (h *SampleHandler) requestAll(c *gin.Context, category string) {
	user := middleware.GetUser(c)
	var req bulkSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}

	result, err := h.service.RequestAll(user.ID, category, req.Note, service.Recipient{
		Name:    req.RecipientName,
		Phone:   req.RecipientPhone,
		Address: req.RecipientAddress,
	})
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{
		"success_count": result.SuccessCount,
		"failed_count":  len(result.Failed),
		"failed":        result.Failed,
	}, nil)
}

// List handles GET /enduser/sample/list
func (h *SampleHandler) List(c *gin.Context) {
	user := middleware.GetUser(c)
	p := common.ParsePagination(c)
	rows, total, err := h.service.ListForUser(user.ID, p.Page, p.Size)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, rows, p.PageMeta(total))
}

// Get handles GET /enduser/sample/:id
func (h *SampleHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	if row.UserID != user.ID {
		common.ErrorResponse(c, 403, "Forbidden", nil)
		return
	}
	common.SuccessResponse(c, row, nil)
}

// Delete handles DELETE /enduser/sample/:id, waiting state only
func (h *SampleHandler) Delete(c *gin.Context) {
	user := middleware.GetUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOwn(user.ID, id); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
