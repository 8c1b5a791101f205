package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sunrise-school/cms-api/api/swagger"
	"github.com/sunrise-school/cms-api/internal/handler"
	"github.com/sunrise-school/cms-api/internal/middleware"
	"github.com/sunrise-school/cms-api/internal/models"
	"github.com/sunrise-school/cms-api/internal/repository"
	"github.com/sunrise-school/cms-api/internal/service"
	"github.com/sunrise-school/cms-api/internal/upload"
	"github.com/sunrise-school/cms-api/pkg/cache"
	"github.com/sunrise-school/cms-api/pkg/config"
	"github.com/sunrise-school/cms-api/pkg/database"
	"github.com/sunrise-school/cms-api/pkg/logger"
	corsmiddleware "github.com/sunrise-school/cms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sunrise-school/cms-api/pkg/middleware/requestid"
	"github.com/sunrise-school/cms-api/pkg/storage"
)

// @title Sunrise School CMS API
// @version 1.0.0
// @description Content and media management for the school website
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, public listings will not be cached", zap.Error(err))
		redisClient = nil
	}

	store, err := buildStorage(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init object storage", "error", err)
	}

	heroRepo := repository.NewHeroRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	userRepo := repository.NewUserRepository(db)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(redisClient, metricsSvc, logr, cfg.Content.CacheTTL)

	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	mediaSvc := service.NewMediaService(upload.NewPipeline(store, logr, cfg.Uploads.ProgressInterval), store, metricsSvc, logr)
	heroSvc := service.NewHeroService(heroRepo, cacheSvc, mediaSvc, nil, logr)
	teamSvc := service.NewTeamService(teamRepo, cacheSvc, mediaSvc, nil, logr)
	gallerySvc := service.NewGalleryService(galleryRepo, cacheSvc, mediaSvc, nil, logr)
	noticeSvc := service.NewNoticeService(noticeRepo, cacheSvc, nil, logr)
	publicSvc := service.NewPublicContentService(heroRepo, teamRepo, galleryRepo, noticeRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(noticeRepo, teamRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	heroHandler := handler.NewHeroHandler(heroSvc)
	teamHandler := handler.NewTeamHandler(teamSvc)
	galleryHandler := handler.NewGalleryHandler(gallerySvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	publicHandler := handler.NewPublicHandler(publicSvc)
	uploadHandler := handler.NewUploadHandler(mediaSvc, cfg.Uploads)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if local, ok := store.(*storage.LocalStorage); ok {
		r.Static("/media", local.Dir())
	}

	api := r.Group(cfg.APIPrefix)

	site := api.Group("/site")
	{
		site.GET("/hero-images", publicHandler.HeroImages)
		site.GET("/team-members", publicHandler.TeamMembers)
		site.GET("/gallery-images", publicHandler.GalleryImages)
		site.GET("/notices", publicHandler.Notices)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
		auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
	}

	admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireAdmin())
	{
		hero := admin.Group("/hero-images")
		hero.GET("", heroHandler.List)
		hero.POST("", middleware.Audit(userRepo, models.AuditActionContentCreate, "hero_images"), heroHandler.Create)
		hero.PUT("/reorder", middleware.Audit(userRepo, models.AuditActionContentReorder, "hero_images"), heroHandler.Reorder)
		hero.PUT("/:id", middleware.Audit(userRepo, models.AuditActionContentUpdate, "hero_images"), heroHandler.Update)
		hero.DELETE("/:id", middleware.Audit(userRepo, models.AuditActionContentDelete, "hero_images"), heroHandler.Delete)

		team := admin.Group("/team-members")
		team.GET("", teamHandler.List)
		team.POST("", middleware.Audit(userRepo, models.AuditActionContentCreate, "team_members"), teamHandler.Create)
		team.PUT("/reorder", middleware.Audit(userRepo, models.AuditActionContentReorder, "team_members"), teamHandler.Reorder)
		team.PUT("/:id", middleware.Audit(userRepo, models.AuditActionContentUpdate, "team_members"), teamHandler.Update)
		team.DELETE("/:id", middleware.Audit(userRepo, models.AuditActionContentDelete, "team_members"), teamHandler.Delete)

		gallery := admin.Group("/gallery-images")
		gallery.GET("", galleryHandler.List)
		gallery.POST("", middleware.Audit(userRepo, models.AuditActionContentCreate, "gallery_images"), galleryHandler.Create)
		gallery.PUT("/reorder", middleware.Audit(userRepo, models.AuditActionContentReorder, "gallery_images"), galleryHandler.Reorder)
		gallery.PUT("/:id", middleware.Audit(userRepo, models.AuditActionContentUpdate, "gallery_images"), galleryHandler.Update)
		gallery.DELETE("/:id", middleware.Audit(userRepo, models.AuditActionContentDelete, "gallery_images"), galleryHandler.Delete)

		notices := admin.Group("/notices")
		notices.GET("", noticeHandler.List)
		notices.POST("", middleware.Audit(userRepo, models.AuditActionContentCreate, "notices"), noticeHandler.Create)
		notices.PUT("/reorder", middleware.Audit(userRepo, models.AuditActionContentReorder, "notices"), noticeHandler.Reorder)
		notices.PUT("/:id", middleware.Audit(userRepo, models.AuditActionContentUpdate, "notices"), noticeHandler.Update)
		notices.DELETE("/:id", middleware.Audit(userRepo, models.AuditActionContentDelete, "notices"), noticeHandler.Delete)

		admin.POST("/uploads", middleware.Audit(userRepo, models.AuditActionMediaUpload, "media"), uploadHandler.Upload)

		if cfg.Exports.Enabled {
			admin.GET("/exports/notices", exportHandler.Notices)
			admin.GET("/exports/team", exportHandler.Team)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStorage selects Supabase storage when configured, falling back
// to the local filesystem for development setups.
func buildStorage(cfg *config.Config, logr *zap.Logger) (storage.ObjectStorage, error) {
	if cfg.Storage.ProjectURL != "" && cfg.Storage.ServiceKey != "" {
		return storage.NewSupabaseStorage(storage.SupabaseConfig{
			ProjectURL:   cfg.Storage.ProjectURL,
			ServiceKey:   cfg.Storage.ServiceKey,
			Bucket:       cfg.Storage.Bucket,
			CacheControl: cfg.Storage.CacheControl,
			Timeout:      cfg.Storage.UploadTimeout,
		})
	}
	logr.Warn("supabase storage not configured, using local filesystem")
	return storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.LocalBaseURL)
}
