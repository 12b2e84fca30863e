package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ReleasedProductHandler handles released product management
type ReleasedProductHandler struct {
	service service.ReleasedProductService
}

// NewReleasedProductHandler creates a new ReleasedProductHandler
func NewReleasedProductHandler(service service.ReleasedProductService) *ReleasedProductHandler {
	return &ReleasedProductHandler{service: service}
}

// List handles GET /released-product
func (h *ReleasedProductHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	brandID := queryUintPtr(c, "brand_id")
	products, total, err := h.service.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"), brandID)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, products, p.PageMeta(total))
}

// Get handles GET /released-product/:id
func (h *ReleasedProductHandler) Get(c *gin.Context) {
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

// Create handles POST /released-product (multipart)
func (h *ReleasedProductHandler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, product)
}

// Update handles PUT /released-product/:id
func (h *ReleasedProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, product, nil)
}

// Delete handles DELETE /released-product/:id
func (h *ReleasedProductHandler) Delete(c *gin.Context) {
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

func (h *ReleasedProductHandler) bind(c *gin.Context) (service.CreateReleasedProductRequest, bool) {
	filename, contentType, data, ok := readUploadedFile(c, "image", false)
	if !ok {
		return service.CreateReleasedProductRequest{}, false
	}
	return service.CreateReleasedProductRequest{
		DesignName:      c.PostForm("design_name"),
		ColorName:       c.PostForm("color_name"),
		BrandID:         formUintPtr(c, "brand_id"),
		LineColorID:     formUintPtr(c, "line_color_id"),
		Base1ColorID:    formUintPtr(c, "base1_color_id"),
		Base2ColorID:    formUintPtr(c, "base2_color_id"),
		PupilColorID:    formUintPtr(c, "pupil_color_id"),
		GraphicDiameter: c.PostForm("graphic_diameter"),
		OpticZone:       c.PostForm("optic_zone"),
		DIA:             c.PostForm("dia"),
		BaseCurve:       c.PostForm("base_curve"),
		Filename:        filename,
		ContentType:     contentType,
		Data:            data,
	}, true
}

// formUintPtr parses an optional numeric form field
func formUintPtr(c *gin.Context, field string) *uint {
	return parseUintPtr(c.PostForm(field))
}

// queryUintPtr parses an optional numeric query parameter
func queryUintPtr(c *gin.Context, field string) *uint {
	return parseUintPtr(c.Query(field))
}

func parseUintPtr(raw string) *uint {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}
