package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// PortfolioHandler handles portfolio management
type PortfolioHandler struct {
	service service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(service service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// List handles GET /portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	portfolios, total, err := h.service.List(p.Page, p.Size, c.Query("search"), c.Query("orderBy"), queryUintPtr(c, "country_id"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, portfolios, p.PageMeta(total))
}

// Get handles GET /portfolio/:id (soft-deleted rows stay readable here)
func (h *PortfolioHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// Create handles POST /portfolio (multipart). A sample work item opens
// in waiting state alongside the row.
func (h *PortfolioHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c)
	req, ok := h.bind(c)
	if !ok {
		return
	}
	portfolio, err := h.service.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, portfolio)
}

// Update handles PUT /portfolio/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}
	portfolio, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, portfolio, nil)
}

// Delete handles DELETE /portfolio/:id (logical)
func (h *PortfolioHandler) Delete(c *gin.Context) {
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

func (h *PortfolioHandler) bind(c *gin.Context) (service.SavePortfolioRequest, bool) {
	filename, contentType, data, ok := readUploadedFile(c, "image", false)
	if !ok {
		return service.SavePortfolioRequest{}, false
	}
	return service.SavePortfolioRequest{
		DesignName:       c.PostForm("design_name"),
		ColorName:        c.PostForm("color_name"),
		ExposedCountries: c.PostForm("exposed_countries"),
		IsFixedAxis:      c.PostForm("is_fixed_axis"),
		LineImageID:      formUintPtr(c, "line_image_id"),
		LineColorID:      formUintPtr(c, "line_color_id"),
		Base1ImageID:     formUintPtr(c, "base1_image_id"),
		Base1ColorID:     formUintPtr(c, "base1_color_id"),
		Base2ImageID:     formUintPtr(c, "base2_image_id"),
		Base2ColorID:     formUintPtr(c, "base2_color_id"),
		PupilImageID:     formUintPtr(c, "pupil_image_id"),
		PupilColorID:     formUintPtr(c, "pupil_color_id"),
		GraphicDiameter:  c.PostForm("graphic_diameter"),
		OpticZone:        c.PostForm("optic_zone"),
		DIA:              c.PostForm("dia"),
		BaseCurve:        c.PostForm("base_curve"),
		Filename:         filename,
		ContentType:      contentType,
		Data:             data,
	}, true
}
