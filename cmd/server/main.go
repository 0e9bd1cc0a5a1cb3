package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/adapters/geocoding"
	ghAdapter "github.com/talentbase/talentbase/adapters/github"
	httpAdapter "github.com/talentbase/talentbase/adapters/http"
	"github.com/talentbase/talentbase/adapters/media_storage"
	"github.com/talentbase/talentbase/adapters/persistence"
	logUC "github.com/talentbase/talentbase/internal/application/usecase/activitylog"
	annotationUC "github.com/talentbase/talentbase/internal/application/usecase/annotation"
	authUC "github.com/talentbase/talentbase/internal/application/usecase/auth"
	directoryUC "github.com/talentbase/talentbase/internal/application/usecase/directory"
	profileUC "github.com/talentbase/talentbase/internal/application/usecase/profile"
	"github.com/talentbase/talentbase/internal/config"
	"github.com/talentbase/talentbase/pkg/auth"
	"github.com/talentbase/talentbase/pkg/logger"
)

func main() {
	fmt.Println("Start TalentBase API Server...")

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	directoryRepo := persistence.NewPostgresDirectoryRepo(dbPool, appLogger)
	activityLogRepo := persistence.NewPostgresActivityLogRepo(dbPool)
	snapshotCache := persistence.NewRedisSnapshotCache(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}
	geocoder, err := geocoding.NewMapquestAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize geocoder: %v", err)
	}
	githubClient := ghAdapter.NewClient()

	home := profileUC.HomePoint{Lat: cfg.Home.Lat, Lng: cfg.Home.Lng}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, geocoder, kafkaClient, snapshotCache, home, appLogger)
	deleteAccountUseCase := profileUC.NewDeleteAccountUseCase(profileRepo, userRepo, activityLogRepo, kafkaClient, snapshotCache, appLogger)
	uploadAvatarUseCase := profileUC.NewUploadAvatarUseCase(userRepo, uploader, appLogger)
	annotationUseCase := annotationUC.NewAnnotationUseCase(profileRepo, kafkaClient, snapshotCache, appLogger)
	directoryUseCase := directoryUC.NewDirectoryUseCase(directoryRepo, snapshotCache, appLogger)
	logUseCase := logUC.NewLogUseCase(activityLogRepo, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, currentUserUseCase, uploadAvatarUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, deleteAccountUseCase, currentUserUseCase, githubClient, appLogger)
	directoryHandler := httpAdapter.NewDirectoryHandler(directoryUseCase, appLogger)
	annotationHandler := httpAdapter.NewAnnotationHandler(annotationUseCase, appLogger)
	logHandler := httpAdapter.NewLogHandler(logUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		users := api.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/avatar", authMiddleware, authHandler.UploadAvatar)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("", authHandler.Login)
			authGroup.GET("", authMiddleware, authHandler.CurrentUser)
		}

		profiles := api.Group("/profile")
		{
			profiles.GET("", directoryHandler.ListAll)
			profiles.GET("/user/:user_id", profileHandler.GetByUserID)
			profiles.GET("/github/:username", profileHandler.GithubRepos)

			private := profiles.Group("")
			private.Use(authMiddleware)
			{
				private.GET("/me", profileHandler.Me)
				private.POST("", profileHandler.Upsert)
				private.DELETE("", profileHandler.DeleteAccount)

				private.PUT("/experience", profileHandler.AddExperience)
				private.DELETE("/experience/:exp_id", profileHandler.DeleteExperience)
				private.PUT("/education", profileHandler.AddEducation)
				private.DELETE("/education/:edu_id", profileHandler.DeleteEducation)

				private.POST("/filter", directoryHandler.Filter)
				private.POST("/skills", directoryHandler.FilterBySkills)

				private.PUT("/favorite/:id", annotationHandler.ToggleFavorite)
				private.PUT("/interviewed/:id", annotationHandler.ToggleInterviewed)
				private.PUT("/stars/:id", annotationHandler.SetStars)
				private.PUT("/worked/:id", annotationHandler.SetWorked)
				private.PUT("/note/:id", annotationHandler.SaveNote)
			}
		}

		logs := api.Group("/logs")
		logs.Use(authMiddleware)
		{
			logs.GET("", logHandler.List)
			logs.GET("/:id", logHandler.Get)
			logs.POST("", logHandler.Add)
			logs.DELETE("/:id", logHandler.Delete)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
