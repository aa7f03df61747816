package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"taskmanager/internal/config"
	"taskmanager/internal/database"
	"taskmanager/internal/handlers"
	"taskmanager/internal/middleware"
	"taskmanager/internal/repository"
	"taskmanager/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if cfg.SeedData {
		if err := database.Seed(database.GetDB()); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewTaskStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo, taskRepo)
	statusService := services.NewTaskStatusService(statusRepo, taskRepo)
	labelService := services.NewLabelService(labelRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, statusRepo, labelRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	statusHandler := handlers.NewTaskStatusHandler(statusService)
	labelHandler := handlers.NewLabelHandler(labelService)
	taskHandler := handlers.NewTaskHandler(taskService)

	requireAuth := middleware.RequireAuth(authService, tokenService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.POST("", userHandler.Create)
			users.PUT("/:id", requireAuth, userHandler.Update)
			users.DELETE("/:id", requireAuth, userHandler.Delete)
		}

		statuses := api.Group("/task_statuses")
		{
			statuses.GET("", statusHandler.List)
			statuses.GET("/:id", statusHandler.Get)
			statuses.POST("", requireAuth, statusHandler.Create)
			statuses.PUT("/:id", requireAuth, statusHandler.Update)
			statuses.DELETE("/:id", requireAuth, statusHandler.Delete)
		}

		labels := api.Group("/labels")
		{
			labels.GET("", labelHandler.List)
			labels.GET("/:id", labelHandler.Get)
			labels.POST("", labelHandler.Create)
			labels.PUT("/:id", labelHandler.Update)
			labels.DELETE("/:id", labelHandler.Delete)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:id", taskHandler.Get)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
