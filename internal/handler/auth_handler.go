package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// AuthHandler handles authentication requests for both trees
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary      계정 등록
// @Description  관리자가 신규 계정을 등록합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  service.RegisterRequest  true  "계정 정보"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}

	user, err := h.service.Register(&req)
	if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrAccountCodeTaken) {
		common.ErrorResponse(c, 409, "Already registered", err)
		return
	}
	if errors.Is(err, common.ErrInvalidInput) {
		common.ErrorResponse(c, 400, "Invalid account code", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Register failed", err)
		return
	}
	common.CreatedResponse(c, user)
}

// Login handles POST /auth/login (Manager tree: admin roles only)
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, true)
}

// EnduserLogin handles POST /enduser/auth/login
func (h *AuthHandler) EnduserLogin(c *gin.Context) {
	h.login(c, false)
}

func (h *AuthHandler) login(c *gin.Context, managerOnly bool) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 422, "Invalid request body", err)
		return
	}

	response, err := h.service.Login(&req, managerOnly)
	if errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 401, "Invalid credentials", err)
		return
	}
	if errors.Is(err, common.ErrForbidden) {
		common.ErrorResponse(c, 403, "관리자 권한이 필요합니다", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Login failed", err)
		return
	}
	common.SuccessResponse(c, response, nil)
}

// Refresh handles POST /auth/refresh with token rotation.
// The token travels in the refresh-token header, not the body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := c.GetHeader("refresh-token")
	if refreshToken == "" {
		common.ErrorResponse(c, 401, "Missing refresh token", nil)
		return
	}

	response, err := h.service.Refresh(refreshToken)
	if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrExpiredToken) || errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 401, "Invalid refresh token", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Token refresh failed", err)
		return
	}
	common.SuccessResponse(c, response, nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		common.ErrorResponse(c, 401, "Unauthenticated", nil)
		return
	}
	common.SuccessResponse(c, user, nil)
}

// CheckUsername handles GET /auth/check/username
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		common.ErrorResponse(c, 400, "username is required", nil)
		return
	}
	exists, err := h.service.UsernameExists(username)
	if err != nil {
		common.ErrorResponse(c, 500, "Check failed", err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"exists": exists}})
}

// CheckAccountCode handles GET /auth/check/account-code
func (h *AuthHandler) CheckAccountCode(c *gin.Context) {
	code := c.Query("account_code")
	if code == "" {
		common.ErrorResponse(c, 400, "account_code is required", nil)
		return
	}
	exists, err := h.service.AccountCodeExists(code)
	if err != nil {
		common.ErrorResponse(c, 500, "Check failed", err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"exists": exists}})
}
