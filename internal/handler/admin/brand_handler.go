package admin

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// BrandHandler handles brand catalog management
type BrandHandler struct {
	service service.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(service service.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// rankMoveRequest single-row rank move
type rankMoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down top bottom"`
}

// List handles GET /brands
// @Summary      브랜드 목록 조회
// @Tags         brands
// @Produce      json
// @Param        page     query  int     false  "페이지"
// @Param        size     query  int     false  "페이지 크기"
// @Param        search   query  string  false  "이름 검색"
// @Param        orderBy  query  string  false  "정렬 (예: rank asc)"
// @Success      200  {object}  common.APIResponse
// @Router       /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	brands, total, err := h.service.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, brands, p.PageMeta(total))
}

// Create handles POST /brands (multipart: name + image)
func (h *BrandHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	filename, contentType, data, ok := readUploadedFile(c, "image", false)
	if !ok {
		return
	}

	brand, err := h.service.Create(c.Request.Context(), name, filename, contentType, data)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, brand)
}

// Update handles PUT /brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	name := c.PostForm("name")
	filename, contentType, data, ok := readUploadedFile(c, "image", false)
	if !ok {
		return
	}

	brand, err := h.service.Update(c.Request.Context(), id, name, filename, contentType, data)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, brand, nil)
}

// Delete handles DELETE /brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}

// MoveRank handles PATCH /brands/rank/:id
func (h *BrandHandler) MoveRank(c *gin.Context) {
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

// BulkRank handles PATCH /brands/rank/bulk with a full permutation
func (h *BrandHandler) BulkRank(c *gin.Context) {
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

// readUploadedFile pulls one optional (or required) multipart file into
// memory. A false return means the response is already written.
func readUploadedFile(c *gin.Context, field string, required bool) (string, string, []byte, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		if required {
			common.ErrorResponse(c, 400, field+" file is required", err)
			return "", "", nil, false
		}
		return "", "", nil, true
	}

	f, err := header.Open()
	if err != nil {
		common.ErrorResponse(c, 400, "Cannot read uploaded file", err)
		return "", "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		common.ErrorResponse(c, 400, "Cannot read uploaded file", err)
		return "", "", nil, false
	}
	return header.Filename, header.Header.Get("Content-Type"), data, true
}
