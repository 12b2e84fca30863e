package enduser

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ShareHandler handles design-image publication
type ShareHandler struct {
	service service.ShareService
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(service service.ShareService) *ShareHandler {
	return &ShareHandler{service: service}
}

type shareBase64Request struct {
	ItemName    string `json:"item_name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ContentType string `json:"content_type"`
	Image       string `json:"image" binding:"required"`
}

type shareMailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Publish handles POST /enduser/share/images as a multipart form with
// item_name, category and the image file. Re-publishing the same
// (item, category) returns the existing link.
func (h *ShareHandler) Publish(c *gin.Context) {
	user := middleware.GetUser(c)
	itemName := c.PostForm("item_name")
	category := c.PostForm("category")
	if itemName == "" || category == "" {
		common.ErrorResponse(c, 422, "item_name and category are required", nil)
		return
	}
	filename, contentType, data, ok := readShareImage(c)
	if !ok {
		return
	}
	share, link, err := h.service.Publish(c.Request.Context(), user.ID, itemName, category, filename, contentType, data)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, gin.H{"image_id": share.ImageID, "link": link})
}

// readShareImage pulls the image multipart file into memory. A false
// return means the response is already written.
func readShareImage(c *gin.Context) (string, string, []byte, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		common.ErrorResponse(c, 400, "image file is required", err)
		return "", "", nil, false
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

// PublishBase64 handles POST /enduser/share/images/base64 with a
// caller-composed image
func (h *ShareHandler) PublishBase64(c *gin.Context) {
	user := middleware.GetUser(c)
	var req shareBase64Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	share, link, err := h.service.PublishBase64(c.Request.Context(), user.ID, req.ItemName, req.Category, contentType, req.Image)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, gin.H{"image_id": share.ImageID, "link": link})
}

// Resolve handles GET /enduser/share/images/:id (public image id)
func (h *ShareHandler) Resolve(c *gin.Context) {
	share, err := h.service.Resolve(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, share, nil)
}

// SendMail handles POST /enduser/share/email/:id
func (h *ShareHandler) SendMail(c *gin.Context) {
	var req shareMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	if err := h.service.SendMailForImageID(c.Request.Context(), c.Param("id"), req.Email); err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"sent": req.Email}, nil)
}
