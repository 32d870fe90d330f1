package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hvndev/devhub-api/internal/config"
	"github.com/hvndev/devhub-api/internal/constants"
	"github.com/hvndev/devhub-api/internal/database"
	"github.com/hvndev/devhub-api/internal/handlers"
	"github.com/hvndev/devhub-api/internal/middleware"
	"github.com/hvndev/devhub-api/internal/repository"
	"github.com/hvndev/devhub-api/internal/services"
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

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	logService := services.NewLogService(logRepo, userRepo)
	likeService := services.NewLikeService(likeRepo, logRepo)
	commentService := services.NewCommentService(commentRepo, logRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	logHandler := handlers.NewLogHandler(logService)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "DevHub API is running",
		})
	})

	// Auth routes
	r.POST("/cadastro", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	// Log entry routes
	logs := r.Group("/logs")
	{
		logs.POST("", logHandler.CreateLog)
		logs.GET("", logHandler.ListLogs)
		logs.GET("/:id", logHandler.GetLog)
		logs.PUT("/:id", logHandler.UpdateLog)
		logs.DELETE("/:id", logHandler.DeleteLog)
		logs.GET("/:id/comments", commentHandler.ListComments)
		logs.POST("/:id/comments", commentHandler.CreateComment)
	}

	// Comment routes
	comments := r.Group("/comments")
	{
		comments.PUT("/:id", commentHandler.UpdateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	// Like routes
	likes := r.Group("/likes")
	{
		likes.POST("", likeHandler.CreateLike)
		likes.DELETE("", likeHandler.DeleteLike)
		likes.POST("/toggle", likeHandler.ToggleLike)
	}

	// Metrics
	r.GET("/metrics/:userId", logHandler.GetUserMetrics)

	// Start server
	addr := ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
