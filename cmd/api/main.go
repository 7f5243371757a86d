package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rekib0023/expense-sharing-backend/internal/config"
	"github.com/rekib0023/expense-sharing-backend/internal/database"
	"github.com/rekib0023/expense-sharing-backend/internal/handlers"
	"github.com/rekib0023/expense-sharing-backend/internal/logger"
	"github.com/rekib0023/expense-sharing-backend/internal/middleware"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
	"github.com/rekib0023/expense-sharing-backend/internal/validator"

	_ "github.com/rekib0023/expense-sharing-backend/internal/docs" // Swagger docs
)

// @title           Expense Sharing API
// @version         1.0
// @description     Backend for tracking personal expenses, splitting them into groups, and charting spending per category.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Synchronize schema
	if err := dbManager.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Custom binding validations
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db, categoryService)
	chartService := services.NewChartService(db)
	groupService := services.NewGroupService(db, userService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	chartHandler := handlers.NewChartHandler(chartService)
	groupHandler := handlers.NewGroupHandler(groupService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS with credentials so the browser sends the session cookies
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Health check endpoint
	api.GET("/healthchecker", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "The API is live"})
	})

	// Auth routes. Refresh resolves the session from the refresh cookie
	// itself, so it stays outside the auth middleware; logout needs a
	// live session to know whose refresh token to revoke.
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/refresh", authHandler.Refresh)
	auth.GET("/logout", middleware.RequireUser(userService), authHandler.Logout)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.RequireUser(userService))

	user := protected.Group("/user")
	user.GET("/me", userHandler.Me)
	user.GET("/all", userHandler.All)

	expense := protected.Group("/expense")
	expense.POST("/category", categoryHandler.CreateCategory)
	expense.GET("/categories", categoryHandler.GetCategories)
	expense.GET("/category/:id", categoryHandler.GetCategoryByID)
	expense.POST("/", expenseHandler.CreateExpense)
	expense.GET("/", expenseHandler.GetExpenses)
	expense.GET("/group", expenseHandler.GroupExpenses)
	expense.GET("/:id", expenseHandler.GetExpenseByID)
	expense.PUT("/:id", expenseHandler.UpdateExpense)
	expense.DELETE("/:id", expenseHandler.DeleteExpense)

	charts := protected.Group("/charts")
	charts.GET("/category_expense", chartHandler.CategoryExpense)

	group := protected.Group("/group")
	group.POST("", groupHandler.CreateGroup)
	group.GET("", groupHandler.GetGroups)
	group.GET("/:id", groupHandler.GetGroupByID)
	group.POST("/:id/member", groupHandler.AddMember)
	group.GET("/:id/members", groupHandler.GetMembers)

	protected.POST("/friend", groupHandler.AddFriend)
	protected.GET("/friends", groupHandler.GetFriends)

	log.Infof("Starting expense sharing backend on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
