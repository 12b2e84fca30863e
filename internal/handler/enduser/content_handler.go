package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ContentHandler handles portfolio and released-product detail reads
// plus their presence counters. Detail reads here bump the view counter.
type ContentHandler struct {
	portfolios service.PortfolioService
	products   service.ReleasedProductService
	presence   service.PresenceService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(
	portfolios service.PortfolioService,
	products service.ReleasedProductService,
	presence service.PresenceService,
) *ContentHandler {
	return &ContentHandler{
		portfolios: portfolios,
		products:   products,
		presence:   presence,
	}
}

type presenceRequest struct {
	Name string `json:"name" binding:"required"`
}

// PortfolioList handles GET /enduser/portfolio/list
func (h *ContentHandler) PortfolioList(c *gin.Context) {
	p := common.ParsePagination(c)
	portfolios, total, err := h.portfolios.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"), nil)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, portfolios, p.PageMeta(total))
}

// PortfolioDetail handles GET /enduser/portfolio/:name (name or ID)
func (h *ContentHandler) PortfolioDetail(c *gin.Context) {
	user := middleware.GetUser(c)
	detail, err := h.portfolios.GetForViewer(c.Request.Context(), c.Param("name"), user.Language)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// ProductList handles GET /enduser/released_product/list
func (h *ContentHandler) ProductList(c *gin.Context) {
	p := common.ParsePagination(c)
	products, total, err := h.products.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"), nil)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, products, p.PageMeta(total))
}

// ProductDetail handles GET /enduser/released_product/:name
func (h *ContentHandler) ProductDetail(c *gin.Context) {
	detail, err := h.products.GetForViewer(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// ProductDetailByID handles GET /enduser/released_product/by-id/:id
func (h *ContentHandler) ProductDetailByID(c *gin.Context) {
	detail, err := h.products.GetForViewer(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// PortfolioEnter handles POST /enduser/portfolio/enter
func (h *ContentHandler) PortfolioEnter(c *gin.Context) {
	h.enter(c, domain.ContentTypePortfolio)
}

// PortfolioLeave handles POST /enduser/portfolio/leave
func (h *ContentHandler) PortfolioLeave(c *gin.Context) {
	h.leave(c, domain.ContentTypePortfolio)
}

// PortfolioRealtimeUsers handles GET /enduser/portfolio/realtime-users
func (h *ContentHandler) PortfolioRealtimeUsers(c *gin.Context) {
	h.count(c, domain.ContentTypePortfolio)
}

// ProductEnter handles POST /enduser/released_product/enter
func (h *ContentHandler) ProductEnter(c *gin.Context) {
	h.enter(c, domain.ContentTypeReleasedProduct)
}

// ProductLeave handles POST /enduser/released_product/leave
func (h *ContentHandler) ProductLeave(c *gin.Context) {
	h.leave(c, domain.ContentTypeReleasedProduct)
}

// ProductRealtimeUsers handles GET /enduser/released_product/realtime-users
func (h *ContentHandler) ProductRealtimeUsers(c *gin.Context) {
	h.count(c, domain.ContentTypeReleasedProduct)
}

func (h *ContentHandler) enter(c *gin.Context, contentType string) {
	user := middleware.GetUser(c)
	var req presenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	count, err := h.presence.Enter(user.ID, contentType, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"name": req.Name, "count": count}, nil)
}

func (h *ContentHandler) leave(c *gin.Context, contentType string) {
	user := middleware.GetUser(c)
	var req presenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	count, err := h.presence.Leave(user.ID, contentType, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"name": req.Name, "count": count}, nil)
}

// count answers zero for unknown content instead of 404
func (h *ContentHandler) count(c *gin.Context, contentType string) {
	name := c.Query("name")
	count, err := h.presence.Count(contentType, name)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"name": name, "count": count}, nil)
}
