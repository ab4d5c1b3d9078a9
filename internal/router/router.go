package router

import (
	"log"

	"github.com/AviralMathur02/echo-back/internal/handlers"
	"github.com/AviralMathur02/echo-back/internal/middleware"
	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, uploadDir string) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Relationship{},
		&models.Post{},
		&models.Story{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	relationshipRepo := repositories.NewPostgresRelationshipRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	storyRepo := repositories.NewPostgresStoryRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo, relationshipRepo)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipRepo, userRepo)
	postHandler := handlers.NewPostHandler(postRepo, userRepo, relationshipRepo)
	storyHandler := handlers.NewStoryHandler(storyRepo, userRepo, relationshipRepo)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	uploadHandler := handlers.NewUploadHandler(uploadDir)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	e.GET("/api/users/find/:userId", userHandler.FindUser)
	e.POST("/api/upload", uploadHandler.Upload)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	userHandler.RegisterUserRoutes(api)
	relationshipHandler.RegisterRelationshipRoutes(api)
	postHandler.RegisterPostRoutes(api)
	storyHandler.RegisterStoryRoutes(api)
	likeHandler.RegisterLikeRoutes(api)
	commentHandler.RegisterCommentRoutes(api)

	log.Println("All routes configured.")
}
