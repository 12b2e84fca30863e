package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
)

// RequireManager checks that the authenticated user is admin or superadmin
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || !user.IsManager() {
			common.ErrorResponse(c, http.StatusForbidden, "관리자 권한이 필요합니다", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperadmin gates the destructive database-management endpoints
func RequireSuperadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || user.Role != domain.RoleSuperadmin {
			common.ErrorResponse(c, http.StatusForbidden, "최고 관리자 권한이 필요합니다", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
