package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/jwt"
)

// context keys
const (
	ctxUser     = "user"
	ctxUsername = "username"
)

// JWTAuth JWT authentication middleware. The token subject is the
// username; the account row is loaded so downstream handlers see the
// current role even after a role change.
func JWTAuth(jwtManager *jwt.Manager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		// 3. Verify token (refresh tokens only work on /auth/refresh)
		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}
		if claims.TokenType != jwt.TokenTypeAccess {
			common.ErrorResponse(c, 401, "Invalid token", nil)
			c.Abort()
			return
		}

		// 4. Resolve the account (soft-deleted accounts are rejected)
		user, err := userRepo.FindByUsername(claims.Username())
		if err != nil {
			common.ErrorResponse(c, 401, "Unknown account", nil)
			c.Abort()
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxUsername, user.Username)

		c.Next()
	}
}

// GetUser extracts the authenticated account from context
func GetUser(c *gin.Context) *domain.User {
	v, exists := c.Get(ctxUser)
	if !exists {
		return nil
	}
	if user, ok := v.(*domain.User); ok {
		return user
	}
	return nil
}

// GetUsername extracts the authenticated username from context
func GetUsername(c *gin.Context) string {
	v, exists := c.Get(ctxUsername)
	if !exists {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return ""
}
