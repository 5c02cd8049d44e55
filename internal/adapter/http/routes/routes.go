package routes

import (
	"log"
	"strconv"
	"time"

	_ "snapbook/docs" // This will be auto-generated
	"snapbook/internal/adapter/http/handlers"
	repository2 "snapbook/internal/adapter/persistence/repository"
	"snapbook/internal/infrastructure/database"
	"snapbook/internal/infrastructure/notification"
	"snapbook/internal/infrastructure/vision"
	"snapbook/internal/ratelimit"
	"snapbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Photo analysis quotas reset daily; expired counters are swept hourly.
const (
	rateLimitWindow   = 24 * time.Hour
	rateLimitSweepDue = time.Hour
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	engagementRepo := repository2.NewEngagementDynamoRepository(ddb)

	visionClient := vision.NewOpenAIClientFromEnv()
	notifier := notification.NewDynamoDBNotifier(ddb)

	limiter := ratelimit.New(rateLimitWindow)
	limiter.StartSweeper(rateLimitSweepDue)

	snapQuoteUseCase := usecase.NewSnapQuoteUseCase(quoteRepo, visionClient)
	bookingUseCase := usecase.NewBookingUseCase(quoteRepo, engagementRepo, notifier)
	providerJobsUseCase := usecase.NewProviderJobsUseCase(quoteRepo, engagementRepo)

	snapQuoteHandler := handlers.NewSnapQuoteHandler(snapQuoteUseCase, limiter)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	providerJobsHandler := handlers.NewProviderJobsHandler(providerJobsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSnapQuoteRoutes(v1, snapQuoteHandler, bookingHandler, providerJobsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
