package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// ImageHandler handles design asset ingest and management
type ImageHandler struct {
	service service.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(service service.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// List handles GET /images
// @Summary      이미지 목록 조회
// @Tags         images
// @Produce      json
// @Param        category  query  string  false  "레이어 카테고리 (line|base1|base2|pupil)"
// @Param        search    query  string  false  "이름 검색"
// @Success      200  {object}  common.APIResponse
// @Router       /images [get]
func (h *ImageHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	images, total, err := h.service.List(p.Page, p.Size, c.Query("category"), c.Query("search"), c.Query("orderBy"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, images, p.PageMeta(total))
}

// Create handles POST /images (multipart). The upload derives the 64x64
// thumbnail alongside the original.
func (h *ImageHandler) Create(c *gin.Context) {
	filename, contentType, data, ok := readUploadedFile(c, "image", true)
	if !ok {
		return
	}

	image, err := h.service.Create(c.Request.Context(), service.CreateImageRequest{
		Category:     c.PostForm("category"),
		DisplayName:  c.PostForm("display_name"),
		ExposedUsers: c.PostForm("exposed_users"),
		Filename:     filename,
		ContentType:  contentType,
		Data:         data,
	})
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, image)
}

// Update handles PUT /images/:id
func (h *ImageHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	filename, contentType, data, ok := readUploadedFile(c, "image", false)
	if !ok {
		return
	}

	image, err := h.service.Update(c.Request.Context(), id,
		c.PostForm("display_name"), c.PostForm("exposed_users"),
		filename, contentType, data)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, image, nil)
}

// Delete handles DELETE /images/:id
func (h *ImageHandler) Delete(c *gin.Context) {
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
