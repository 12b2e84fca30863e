package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/handler"
	"github.com/lenspick/lenspick-backend/internal/handler/admin"
	"github.com/lenspick/lenspick-backend/internal/handler/enduser"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	brandHandler *admin.BrandHandler,
	countryHandler *admin.CountryHandler,
	colorHandler *admin.ColorHandler,
	imageHandler *admin.ImageHandler,
	productHandler *admin.ReleasedProductHandler,
	portfolioHandler *admin.PortfolioHandler,
	designHandler *admin.CustomDesignHandler,
	progressHandler *admin.ProgressHandler,
	accountHandler *admin.AccountHandler,
	databaseHandler *admin.DatabaseHandler,
	rankHandler *admin.RankHandler,
	catalogHandler *enduser.CatalogHandler,
	contentHandler *enduser.ContentHandler,
	myDesignHandler *enduser.MyDesignHandler,
	cartHandler *enduser.CartHandler,
	sampleHandler *enduser.SampleHandler,
	shareHandler *enduser.ShareHandler,
	localeHandler *enduser.LocaleHandler,
	jwtManager *jwt.Manager,
	userRepo repository.UserRepository,
) {
	authRequired := middleware.JWTAuth(jwtManager, userRepo)

	// Authentication endpoints (no auth required)
	auth := router.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/check/username", authHandler.CheckUsername)
	auth.GET("/check/account-code", authHandler.CheckAccountCode)

	// Current user endpoint (auth required, both trees)
	auth.GET("/me", authRequired, authHandler.Me)

	// Public share resolution (링크 공유 대상은 비로그인 사용자)
	router.GET("/enduser/share/images/:id", shareHandler.Resolve)

	// 관리자 트리
	manager := router.Group("", authRequired, middleware.RequireManager())
	{
		manager.POST("/auth/register", authHandler.Register)

		brands := manager.Group("/brands")
		brands.GET("", brandHandler.List)
		brands.POST("", brandHandler.Create)
		brands.PUT("/:id", brandHandler.Update)
		brands.DELETE("/:id", brandHandler.Delete)
		brands.PATCH("/rank/bulk", brandHandler.BulkRank)
		brands.PATCH("/rank/:id", brandHandler.MoveRank)

		countries := manager.Group("/countries")
		countries.GET("", countryHandler.List)
		countries.POST("", countryHandler.Create)
		countries.PUT("/:id", countryHandler.Update)
		countries.DELETE("/:id", countryHandler.Delete)
		countries.PATCH("/rank/bulk", countryHandler.BulkRank)
		countries.PATCH("/rank/:id", countryHandler.MoveRank)

		colors := manager.Group("/colors")
		colors.GET("", colorHandler.List)
		colors.GET("/:id", colorHandler.Get)
		colors.POST("", colorHandler.Create)
		colors.PUT("/:id", colorHandler.Update)
		colors.DELETE("/:id", colorHandler.Delete)

		images := manager.Group("/images")
		images.GET("", imageHandler.List)
		images.POST("", imageHandler.Create)
		images.PUT("/:id", imageHandler.Update)
		images.DELETE("/:id", imageHandler.Delete)

		products := manager.Group("/released-product")
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)

		portfolios := manager.Group("/portfolio")
		portfolios.GET("", portfolioHandler.List)
		portfolios.GET("/:id", portfolioHandler.Get)
		portfolios.POST("", portfolioHandler.Create)
		portfolios.PUT("/:id", portfolioHandler.Update)
		portfolios.DELETE("/:id", portfolioHandler.Delete)

		designs := manager.Group("/custom-designs")
		designs.GET("", designHandler.List)
		designs.GET("/:id", designHandler.Get)
		designs.PATCH("/:id/status", designHandler.SetStatus)
		designs.DELETE("/:id", designHandler.Delete)

		// 진행 상태 목록 조회 시점에 지연 판정이 확정된다
		progress := manager.Group("/progress-status")
		progress.GET("/list", progressHandler.List)
		progress.GET("/:id", progressHandler.Get)
		progress.PATCH("/:id", progressHandler.SetStatus)
		progress.DELETE("/:id", progressHandler.Delete)

		admins := manager.Group("/admins")
		admins.GET("", accountHandler.List)
		admins.GET("/:id", accountHandler.Get)
		admins.POST("", accountHandler.Create)
		admins.PUT("/:id", accountHandler.Update)
		admins.DELETE("/:id", accountHandler.Delete)

		manager.GET("/v1/rank/", rankHandler.Dashboard)

		// Database management (superadmin only)
		database := manager.Group("/admin/database", middleware.RequireSuperadmin())
		database.GET("/tables", databaseHandler.Tables)
		database.DELETE("/tables/:table", databaseHandler.Truncate)
		database.POST("/item-names/:id", databaseHandler.RegenerateItemNames)
	}

	// 엔드유저 트리
	router.POST("/enduser/auth/login", authHandler.EnduserLogin)

	end := router.Group("/enduser", authRequired)
	{
		end.GET("/brands/list", catalogHandler.Brands)
		end.GET("/colors/list", catalogHandler.Colors)
		end.GET("/images/list", catalogHandler.Images)
		end.GET("/countries/sorted", catalogHandler.CountriesSorted)
		end.GET("/countries/exposed_sorted", catalogHandler.CountriesExposedSorted)

		portfolio := end.Group("/portfolio")
		portfolio.GET("/list", contentHandler.PortfolioList)
		portfolio.POST("/enter", contentHandler.PortfolioEnter)
		portfolio.POST("/leave", contentHandler.PortfolioLeave)
		portfolio.GET("/realtime-users", contentHandler.PortfolioRealtimeUsers)
		portfolio.GET("/:name", contentHandler.PortfolioDetail)

		product := end.Group("/released_product")
		product.GET("/list", contentHandler.ProductList)
		product.POST("/enter", contentHandler.ProductEnter)
		product.POST("/leave", contentHandler.ProductLeave)
		product.GET("/realtime-users", contentHandler.ProductRealtimeUsers)
		product.GET("/by-id/:id", contentHandler.ProductDetailByID)
		product.GET("/:name", contentHandler.ProductDetail)

		myDesigns := end.Group("/my-designs")
		myDesigns.GET("/list", myDesignHandler.List)
		myDesigns.GET("/latest", myDesignHandler.Latest)
		myDesigns.GET("/:id", myDesignHandler.Get)
		myDesigns.POST("", myDesignHandler.Create)
		myDesigns.PUT("/:id", myDesignHandler.Update)
		myDesigns.DELETE("/:id", myDesignHandler.Delete)

		cart := end.Group("/cart")
		cart.GET("", cartHandler.List)
		cart.POST("", cartHandler.Add)
		cart.DELETE("", cartHandler.Remove)

		sample := end.Group("/sample")
		sample.GET("/list", sampleHandler.List)
		sample.GET("/:id", sampleHandler.Get)
		sample.POST("", sampleHandler.Request)
		sample.POST("/custom-design", sampleHandler.RequestAllCustomDesigns)
		sample.POST("/portfolio", sampleHandler.RequestAllPortfolios)
		sample.DELETE("/:id", sampleHandler.Delete)

		share := end.Group("/share")
		share.POST("/images", shareHandler.Publish)
		share.POST("/images/base64", shareHandler.PublishBase64)
		share.POST("/email/:id", shareHandler.SendMail)

		end.POST("/locale_kr", localeHandler.SetKorean)
		end.POST("/locale_en", localeHandler.SetEnglish)
		end.GET("/current_locale", localeHandler.Current)
	}
}
