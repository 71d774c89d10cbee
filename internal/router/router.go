package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/handlers"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/middleware"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
)

// Setup initializes the routing for the application. The redis client is
// optional; when nil the report cache middleware is a pass-through.
func Setup(engine *gin.Engine, db *sql.DB, rdb *redis.Client) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	playerRepo := repositories.NewPlayerRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	matchDayRepo := repositories.NewMatchDayRepository(db)

	// Initialize Services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	playerService := services.NewPlayerService(playerRepo)
	paymentService := services.NewPaymentService(paymentRepo, playerRepo, matchDayRepo)
	expenseService := services.NewExpenseService(expenseRepo, matchDayRepo)
	matchDayService := services.NewMatchDayService(matchDayRepo)
	reportService := services.NewReportService(playerRepo, paymentRepo, expenseRepo, matchDayRepo)
	statisticsService := services.NewStatisticsService(playerRepo, paymentRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	matchDayHandler := handlers.NewMatchDayHandler(matchDayService)
	reportHandler := handlers.NewReportHandler(reportService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	apiV1 := engine.Group("/api/v1")

	// Login is the only unauthenticated route.
	apiV1.POST("/users/login", authHandler.LoginUser)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupUserRoutes(authenticated, authHandler, userHandler)
		SetupPlayerRoutes(authenticated, playerHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
		SetupExpenseRoutes(authenticated, expenseHandler)
		SetupMatchDayRoutes(authenticated, matchDayHandler)
		SetupReportRoutes(authenticated, reportHandler, rdb)
		SetupStatisticsRoutes(authenticated, statisticsHandler, rdb)
	}
}
