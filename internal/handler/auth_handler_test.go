package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/internal/service"
	"github.com/lenspick/lenspick-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newRefreshRouter(t *testing.T) (*gin.Engine, *service.LoginResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	manager := jwt.NewManager("test-secret", "HS256", 30*time.Minute, 7*24*time.Hour)
	authService := service.NewAuthService(repository.NewUserRepository(db), manager, nil, nil)
	if _, err := authService.Register(&service.RegisterRequest{
		Username: "hana", Password: "pass1234", Role: domain.RoleEnduser, AccountCode: "01",
	}); err != nil {
		t.Fatalf("register fixture user: %v", err)
	}
	tokens, err := authService.Login(&service.LoginRequest{Username: "hana", Password: "pass1234"}, false)
	if err != nil {
		t.Fatalf("login fixture user: %v", err)
	}

	router := gin.New()
	router.POST("/auth/refresh", NewAuthHandler(authService).Refresh)
	return router, tokens
}

func postRefresh(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	if token != "" {
		req.Header.Set("refresh-token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRefreshEndpoint(t *testing.T) {
	router, tokens := newRefreshRouter(t)

	t.Run("refresh-token 헤더로 토큰 쌍을 재발급한다", func(t *testing.T) {
		w := postRefresh(router, tokens.RefreshToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
	})

	t.Run("깨진 토큰은 401", func(t *testing.T) {
		w := postRefresh(router, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("액세스 토큰은 401", func(t *testing.T) {
		w := postRefresh(router, tokens.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("헤더가 없으면 401", func(t *testing.T) {
		w := postRefresh(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
