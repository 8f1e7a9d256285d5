package routes

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/wwdiegovarela/consultas-app-cliente/docs" // This will be auto-generated
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	repository2 "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/persistence/repository"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/infrastructure/config"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/infrastructure/database"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/infrastructure/identity"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/infrastructure/logger"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/infrastructure/push"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	ctx := context.Background()

	db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to the warehouse: %v", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("Failed to create the DynamoDB client: %v", err)
	}

	verifier, err := identity.NewVerifier(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	if err != nil {
		log.Fatalf("Identity verifier not configured: %v", err)
	}

	var pushSender interfaces.IPushSender
	fcmClient, err := push.NewFCMClient(cfg.PushEndpoint, cfg.PushServerKey)
	if err != nil {
		zlog.Warnf("[push][routes] push sender not configured err=%v", err)
	} else {
		pushSender = fcmClient
	}

	userRepo := repository2.NewUserPostgresRepository(db, cfg.QueryTimeout)
	coverageRepo := repository2.NewCoveragePostgresRepository(db, cfg.QueryTimeout, cfg.LargeQueryTimeout)
	shortfallRepo := repository2.NewShortfallPostgresRepository(db, cfg.QueryTimeout)
	contactRepo := repository2.NewContactPostgresRepository(db, cfg.QueryTimeout)
	messageRepo := repository2.NewMessagePostgresRepository(db, cfg.QueryTimeout)
	surveyRepo := repository2.NewSurveyPostgresRepository(db, cfg.QueryTimeout)
	profileSink := repository2.NewUserProfileDynamoRepository(ddb)

	thresholds := entities.Thresholds{Green: cfg.GreenThreshold, Yellow: cfg.YellowThreshold}

	authUseCase := usecase.NewAuthUseCase(verifier, userRepo, zlog)
	coverageUseCase := usecase.NewCoverageUseCase(coverageRepo, shortfallRepo, thresholds, cfg.HistoryDays, zlog)
	shortfallUseCase := usecase.NewShortfallUseCase(shortfallRepo, zlog)
	contactUseCase := usecase.NewContactUseCase(contactRepo, zlog)
	messagingUseCase := usecase.NewMessagingUseCase(messageRepo, zlog)
	surveyUseCase := usecase.NewSurveyUseCase(surveyRepo, zlog)
	notificationUseCase := usecase.NewNotificationUseCase(userRepo, pushSender, zlog)
	syncUseCase := usecase.NewSyncUseCase(userRepo, profileSink, zlog)

	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler()
	coverageHandler := handlers.NewCoverageHandler(coverageUseCase)
	shortfallHandler := handlers.NewShortfallHandler(shortfallUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	messageHandler := handlers.NewMessageHandler(messagingUseCase)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	adminHandler := handlers.NewAdminHandler(syncUseCase)

	// Rutas publicas
	router.GET("/", healthHandler.Check)
	router.GET("/health", healthHandler.Check)
	router.GET("/api/health", healthHandler.Check)

	authenticate := middleware.Authenticate(authUseCase)

	api := router.Group("/api", authenticate)

	addAuthRoutes(api, authHandler)
	addCoverageRoutes(api, coverageHandler)
	addShortfallRoutes(api, shortfallHandler)
	addContactRoutes(api, contactHandler)
	addMessagingRoutes(api, messageHandler)
	addSurveyRoutes(api, surveyHandler)
	addNotificationRoutes(api, notificationHandler)
	addAdminRoutes(api, adminHandler)
}

func setMiddlewares(cfg config.Config) {
	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigins}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
