package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lenspick/lenspick-backend/internal/config"
	"github.com/lenspick/lenspick-backend/internal/handler"
	"github.com/lenspick/lenspick-backend/internal/handler/admin"
	"github.com/lenspick/lenspick-backend/internal/handler/enduser"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/migration"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/internal/routes"
	"github.com/lenspick/lenspick-backend/internal/service"
	pkgcache "github.com/lenspick/lenspick-backend/pkg/cache"
	"github.com/lenspick/lenspick-backend/pkg/jwt"
	pkglogger "github.com/lenspick/lenspick-backend/pkg/logger"
	"github.com/lenspick/lenspick-backend/pkg/mailer"
	pkgredis "github.com/lenspick/lenspick-backend/pkg/redis"
	"github.com/lenspick/lenspick-backend/pkg/storage"
	"github.com/lenspick/lenspick-backend/pkg/translator"
)

// @title           Lenspick Backend API
// @version         1.0
// @description     커스텀 렌즈 디자인 카탈로그 / 샘플 제작 요청 백엔드
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	pkglogger.InitStructured(env)
	zlog := pkglogger.GetLogger()
	zlog.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting lenspick-backend")

	cfg, err := config.Load(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL 연결
	db, err := initDB(cfg, env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if env == "dev" || env == "local" {
		if err := migration.SeedSuperadmin(db, os.Getenv("SEED_ADMIN_USERNAME"), os.Getenv("SEED_ADMIN_PASSWORD")); err != nil {
			zlog.Warn().Err(err).Msg("superadmin seed failed")
		}
	}

	// Redis 연결 (로케일 캐시 전용, 없어도 기동)
	var cacheService pkgcache.Service
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		zlog.Warn().Err(err).Msg("Redis unavailable, locale cache disabled")
	} else {
		cacheService = pkgcache.NewService(redisClient)
	}

	// S3 호환 스토리지
	store, err := storage.NewClient(storage.Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		ForcePathStyle:  cfg.Storage.ForcePathStyle,
		PublicACL:       cfg.Storage.PublicACL,
	})
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	translate, err := translator.New(cfg.Translator.Endpoint)
	if err != nil {
		log.Fatalf("Failed to init translator: %v", err)
	}

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Sender:   cfg.SMTP.Sender,
	})

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.AccessTTL(), cfg.RefreshTTL())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	countryRepo := repository.NewCountryRepository(db)
	colorRepo := repository.NewColorRepository(db)
	imageRepo := repository.NewImageRepository(db)
	productRepo := repository.NewReleasedProductRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	designRepo := repository.NewCustomDesignRepository(db)
	cartRepo := repository.NewCartRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	shareRepo := repository.NewShareRepository(db)
	realtimeRepo := repository.NewRealtimeRepository(db)
	dailyViewRepo := repository.NewDailyViewRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Services
	uploadService := service.NewUploadService(store)
	authService := service.NewAuthService(userRepo, jwtManager, cacheService, translate)
	userService := service.NewUserService(userRepo)
	brandService := service.NewBrandService(brandRepo, uploadService)
	countryService := service.NewCountryService(countryRepo, translate)
	colorService := service.NewColorService(colorRepo)
	imageService := service.NewImageService(imageRepo, uploadService)
	productService := service.NewReleasedProductService(productRepo, brandRepo, colorRepo, uploadService)
	portfolioService := service.NewPortfolioService(portfolioRepo, progressRepo, designRepo, userRepo, imageRepo, colorRepo, countryService, uploadService)
	designService := service.NewCustomDesignService(designRepo, progressRepo, userRepo, imageRepo, colorRepo, uploadService)
	cartService := service.NewCartService(cartRepo, designRepo, portfolioRepo)
	sampleService := service.NewSampleService(progressRepo, cartRepo, designRepo, portfolioRepo, userRepo)
	shareService := service.NewShareService(shareRepo, designRepo, portfolioRepo, uploadService, mail, cfg.ShareURL)
	presenceService := service.NewPresenceService(realtimeRepo, portfolioRepo, productRepo)
	rankService := service.NewRankService(dailyViewRepo, designRepo, progressRepo)
	localeService := service.NewLocaleService(userRepo, cacheService)
	databaseService := service.NewDatabaseService(maintenanceRepo, designRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	brandHandler := admin.NewBrandHandler(brandService)
	countryHandler := admin.NewCountryHandler(countryService)
	colorHandler := admin.NewColorHandler(colorService)
	imageHandler := admin.NewImageHandler(imageService)
	productHandler := admin.NewReleasedProductHandler(productService)
	portfolioHandler := admin.NewPortfolioHandler(portfolioService)
	designHandler := admin.NewCustomDesignHandler(designService)
	progressHandler := admin.NewProgressHandler(sampleService)
	accountHandler := admin.NewAccountHandler(userService, authService)
	databaseHandler := admin.NewDatabaseHandler(databaseService)
	rankHandler := admin.NewRankHandler(rankService)
	catalogHandler := enduser.NewCatalogHandler(brandService, colorService, imageService, countryService)
	contentHandler := enduser.NewContentHandler(portfolioService, productService, presenceService)
	myDesignHandler := enduser.NewMyDesignHandler(designService)
	cartHandler := enduser.NewCartHandler(cartService)
	sampleHandler := enduser.NewSampleHandler(sampleService)
	shareHandler := enduser.NewShareHandler(shareService)
	localeHandler := enduser.NewLocaleHandler(localeService, translate)

	// Gin 라우터 생성
	if env != "dev" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS 설정
	allowOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "refresh-token", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "lenspick-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI (개발 환경에서만)
	if env == "dev" || env == "local" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.Setup(
		router,
		authHandler,
		brandHandler,
		countryHandler,
		colorHandler,
		imageHandler,
		productHandler,
		portfolioHandler,
		designHandler,
		progressHandler,
		accountHandler,
		databaseHandler,
		rankHandler,
		catalogHandler,
		contentHandler,
		myDesignHandler,
		cartHandler,
		sampleHandler,
		shareHandler,
		localeHandler,
		jwtManager,
		userRepo,
	)

	// DB 커넥션 수를 주기적으로 메트릭에 반영
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
			}
		}()
	}

	zlog.Info().Str("addr", cfg.Server.Addr).Msg("server listening")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// initDB MySQL 연결 초기화
func initDB(cfg *config.Config, env string) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if env == "dev" || env == "local" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
