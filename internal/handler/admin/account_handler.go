package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// AccountHandler handles account administration under /admins
type AccountHandler struct {
	users service.UserService
	auth  service.AuthService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(users service.UserService, auth service.AuthService) *AccountHandler {
	return &AccountHandler{users: users, auth: auth}
}

// List handles GET /admins
func (h *AccountHandler) List(c *gin.Context) {
	p := common.ParsePagination(c)
	accounts, total, err := h.users.List(p.Page, p.Size, c.Query("role"), c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, accounts, p.PageMeta(total))
}

// Get handles GET /admins/:id
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	account, err := h.users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, account, nil)
}

// Create handles POST /admins (same contract as /auth/register)
func (h *AccountHandler) Create(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	account, err := h.auth.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	common.CreatedResponse(c, account)
}

// Update handles PUT /admins/:id
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}
	account, err := h.users.Update(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, account, nil)
}

// Delete handles DELETE /admins/:id (logical)
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}
