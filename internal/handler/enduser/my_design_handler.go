package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// MyDesignHandler handles the owner's custom designs
type MyDesignHandler struct {
	service service.CustomDesignService
}

// NewMyDesignHandler creates a new MyDesignHandler
func NewMyDesignHandler(service service.CustomDesignService) *MyDesignHandler {
	return &MyDesignHandler{service: service}
}

// saveDesignRequest owner design save payload. The main image arrives as
// a base64 blob composed client-side.
type saveDesignRequest struct {
	RequestMessage   string              `json:"request_message"`
	MainImage        string              `json:"main_image"`
	ImageContentType string              `json:"image_content_type"`
	Line             service.LayerInput  `json:"line"`
	Base1            service.LayerInput  `json:"base1"`
	Base2            service.LayerInput  `json:"base2"`
	Pupil            service.LayerInput  `json:"pupil"`
	GraphicDiameter  string              `json:"graphic_diameter"`
	OpticZone        string              `json:"optic_zone"`
	DIA              string              `json:"dia"`
	BaseCurve        string              `json:"base_curve"`
}

func (r *saveDesignRequest) toService() service.SaveCustomDesignRequest {
	return service.SaveCustomDesignRequest{
		RequestMessage:   r.RequestMessage,
		MainImageBase64:  r.MainImage,
		ImageContentType: r.ImageContentType,
		Line:             r.Line,
		Base1:            r.Base1,
		Base2:            r.Base2,
		Pupil:            r.Pupil,
		GraphicDiameter:  r.GraphicDiameter,
		OpticZone:        r.OpticZone,
		DIA:              r.DIA,
		BaseCurve:        r.BaseCurve,
	}
}

// List handles GET /enduser/my-designs/list
func (h *MyDesignHandler) List(c *gin.Context) {
	user := middleware.GetUser(c)
	p := common.ParsePagination(c)
	designs, total, err := h.service.ListByOwner(user.ID, p.Page, p.Size)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, designs, p.PageMeta(total))
}

// Get handles GET /enduser/my-designs/:id (item name or numeric ID)
func (h *MyDesignHandler) Get(c *gin.Context) {
	user := middleware.GetUser(c)
	detail, err := h.service.GetOwned(user.ID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// Latest handles GET /enduser/my-designs/latest
func (h *MyDesignHandler) Latest(c *gin.Context) {
	user := middleware.GetUser(c)
	detail, err := h.service.Latest(user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, detail, nil)
}

// Create handles POST /enduser/my-designs
func (h *MyDesignHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c)
	var req saveDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	design, err := h.service.Create(c.Request.Context(), user.ID, req.toService())
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, design)
}

// Update handles PUT /enduser/my-designs/:id (blocked once complete)
func (h *MyDesignHandler) Update(c *gin.Context) {
	user := middleware.GetUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req saveDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	design, err := h.service.Update(c.Request.Context(), user.ID, id, req.toService())
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, design, nil)
}

// Delete handles DELETE /enduser/my-designs/:id
func (h *MyDesignHandler) Delete(c *gin.Context) {
	user := middleware.GetUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user.ID, id, false); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
