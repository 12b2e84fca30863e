package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// CountryHandler handles country catalog management
type CountryHandler struct {
	service service.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(service service.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

type countryRequest struct {
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// List handles GET /countries
func (h *CountryHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	countries, total, err := h.service.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, countries, p.PageMeta(total))
}

// Create handles POST /countries
func (h *CountryHandler) Create(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	country, err := h.service.Create(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, country)
}

// Update handles PUT /countries/:id
func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	country, err := h.service.Update(id, req.Name, req.EnglishName)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, country, nil)
}

// Delete handles DELETE /countries/:id (hard delete with dependency guard)
func (h *CountryHandler) Delete(c *gin.Context) {
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

// MoveRank handles PATCH /countries/rank/:id
func (h *CountryHandler) MoveRank(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req rankMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	if err := h.service.MoveRank(id, req.Direction); err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"id": id, "direction": req.Direction}, nil)
}

// BulkRank handles PATCH /countries/rank/bulk
func (h *CountryHandler) BulkRank(c *gin.Context) {
	var entries []repository.RankEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	if err := h.service.BulkRank(entries); err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"updated": len(entries)}, nil)
}
