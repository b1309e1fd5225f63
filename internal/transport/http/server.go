package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"docflow/internal/ai"
	appsvc "docflow/internal/app"
	"docflow/internal/bootstrap"
	"docflow/internal/cache"
	"docflow/internal/platform/rabbitmq"
	"docflow/internal/repository"
	"docflow/internal/transport/http/handler"
	"docflow/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	docRepo := repository.NewDocumentRepository(app.MySQL)
	settingRepo := repository.NewUserSettingRepository(app.MySQL)
	requestRepo := repository.NewAIRequestRepository(app.MySQL)
	genRepo := repository.NewGeneratedDocumentRepository(app.MySQL)

	cleanupPublisher := rabbitmq.NewCleanupPublisher(app.MQConn, app.Config.RabbitMQ.UserCleanupQueue)
	generationCache := cache.NewGenerationCache(
		app.Redis,
		time.Duration(app.Config.Redis.GenerationTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.GenerationDirtyTTLSeconds)*time.Second,
	)

	authService := appsvc.NewAuthService(
		userRepo,
		cleanupPublisher,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	documentService := appsvc.NewDocumentService(docRepo, genRepo)
	settingService := appsvc.NewSettingService(settingRepo)
	generationService := appsvc.NewGenerationService(
		docRepo,
		requestRepo,
		genRepo,
		generationCache,
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{
			BaseURL:   app.Config.LLM.BaseURL,
			APIKey:    app.Config.LLM.APIKey,
			Model:     app.Config.LLM.Model,
			MaxTokens: app.Config.LLM.MaxTokens,
		},
		app.Config.Quota.HourlyLimit,
		app.Config.Quota.DailyLimit,
	)

	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService)
	settingHandler := handler.NewSettingHandler(settingService)
	generationHandler := handler.NewGenerationHandler(generationService)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)
	authGroup.DELETE("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.DeleteMe)

	docGroup := v1.Group("/documents")
	docGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	docGroup.POST("", documentHandler.Create)
	docGroup.GET("", documentHandler.List)
	docGroup.GET("/:id", documentHandler.Get)
	docGroup.PUT("/:id", documentHandler.Update)
	docGroup.DELETE("/:id", documentHandler.Delete)
	docGroup.POST("/:id/generate", generationHandler.Generate)
	docGroup.GET("/:id/generate", generationHandler.ListGenerated)

	settingGroup := v1.Group("/settings")
	settingGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	settingGroup.GET("", settingHandler.Get)
	settingGroup.PUT("", settingHandler.Update)

	return router
}
