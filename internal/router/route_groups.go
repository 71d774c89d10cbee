package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/handlers"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/middleware"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
)

// writeRoles are the roles allowed to create, update, and delete records.
var writeRoles = []string{models.RoleAdmin, models.RoleManager, models.RoleTreasurer}

// SetupUserRoutes sets up the user management routes. Registering new users
// and deleting users are admin-only; the handler enforces the finer-grained
// self-edit rules on update.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	{
		userRoutes.GET("/me", userHandler.GetCurrentUser)
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.GET("/:id", userHandler.GetUserByID)
		userRoutes.PUT("/:id", userHandler.UpdateUser)

		adminRoutes := userRoutes.Group("")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("/register", authHandler.RegisterUser)
			adminRoutes.DELETE("/:id", userHandler.DeleteUser)
		}
	}
}

// SetupPlayerRoutes sets up the player roster routes.
func SetupPlayerRoutes(authenticatedGroup *gin.RouterGroup, playerHandler *handlers.PlayerHandler) {
	playerRoutes := authenticatedGroup.Group("/players")
	{
		playerRoutes.GET("", playerHandler.GetPlayers)
		playerRoutes.GET("/:id", playerHandler.GetPlayerByID)

		writeRoutes := playerRoutes.Group("")
		writeRoutes.Use(middleware.RoleAuthMiddleware(writeRoles...))
		{
			writeRoutes.POST("", playerHandler.CreatePlayer)
			writeRoutes.PUT("/:id", playerHandler.UpdatePlayer)
			writeRoutes.DELETE("/:id", playerHandler.DeletePlayer)
		}
	}
}

// SetupPaymentRoutes sets up the payment routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := authenticatedGroup.Group("/payments")
	{
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)

		writeRoutes := paymentRoutes.Group("")
		writeRoutes.Use(middleware.RoleAuthMiddleware(writeRoles...))
		{
			writeRoutes.POST("", paymentHandler.CreatePayment)
			writeRoutes.PUT("/:id", paymentHandler.UpdatePayment)
			writeRoutes.DELETE("/:id", paymentHandler.DeletePayment)
		}
	}
}

// SetupExpenseRoutes sets up the expense routes.
func SetupExpenseRoutes(authenticatedGroup *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenseRoutes := authenticatedGroup.Group("/expenses")
	{
		expenseRoutes.GET("", expenseHandler.GetExpenses)
		expenseRoutes.GET("/:id", expenseHandler.GetExpenseByID)

		writeRoutes := expenseRoutes.Group("")
		writeRoutes.Use(middleware.RoleAuthMiddleware(writeRoles...))
		{
			writeRoutes.POST("", expenseHandler.CreateExpense)
			writeRoutes.PUT("/:id", expenseHandler.UpdateExpense)
			writeRoutes.DELETE("/:id", expenseHandler.DeleteExpense)
		}
	}
}

// SetupMatchDayRoutes sets up the match day routes.
func SetupMatchDayRoutes(authenticatedGroup *gin.RouterGroup, matchDayHandler *handlers.MatchDayHandler) {
	matchDayRoutes := authenticatedGroup.Group("/match-days")
	{
		matchDayRoutes.GET("", matchDayHandler.GetMatchDays)
		matchDayRoutes.GET("/:id", matchDayHandler.GetMatchDayByID)

		writeRoutes := matchDayRoutes.Group("")
		writeRoutes.Use(middleware.RoleAuthMiddleware(writeRoles...))
		{
			writeRoutes.POST("", matchDayHandler.CreateMatchDay)
			writeRoutes.PUT("/:id", matchDayHandler.UpdateMatchDay)
			writeRoutes.DELETE("/:id", matchDayHandler.DeleteMatchDay)
		}
	}
}

// SetupReportRoutes sets up the reporting routes. Responses are cached
// briefly when a redis client is available.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler, rdb *redis.Client) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.ReportCache(rdb))
	{
		reportRoutes.GET("/monthly", reportHandler.GetMonthlyReport)
		reportRoutes.GET("/pitch", reportHandler.GetPitchReport)
		reportRoutes.GET("/match-day", reportHandler.GetMatchDayReport)
	}
}

// SetupStatisticsRoutes sets up the statistics routes.
func SetupStatisticsRoutes(authenticatedGroup *gin.RouterGroup, statisticsHandler *handlers.StatisticsHandler, rdb *redis.Client) {
	statisticsRoutes := authenticatedGroup.Group("/statistics")
	statisticsRoutes.Use(middleware.ReportCache(rdb))
	{
		statisticsRoutes.GET("/upcoming-payments", statisticsHandler.GetUpcomingPayments)
		statisticsRoutes.GET("/payment-summary", statisticsHandler.GetPaymentSummary)
	}
}
