package main

import (
	"log"
	"time"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/config"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/constants"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/database"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/handlers"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/mail"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// DB_SEED=1 drops everything and loads demo fixtures; plain startup only
	// migrates.
	if cfg.SeedOnStart {
		if err := database.Reseed(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	} else {
		if err := database.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with a cookie store. The options are shared
	// with the auth handler so remember-me logins keep the same attributes.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	cookieOpts := sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	}
	store.Options(cookieOpts)
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	firmRepo := repository.NewFirmRepository(db)
	productRepo := repository.NewProductRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewResetTokenService(cfg.SecretKey, time.Duration(cfg.ResetTokenTTL)*time.Second)
	mailer := mail.NewSMTPMailer(cfg)
	resetService := services.NewPasswordResetService(userRepo, tokenService, mailer, cfg.BaseURL)
	postService := services.NewPostService(postRepo, productRepo)
	directoryService := services.NewDirectoryService(firmRepo, productRepo)
	pictures := storage.NewPictureStore(cfg.PictureDir)

	// Handlers
	pagesHandler := handlers.NewPagesHandler()
	authHandler := handlers.NewAuthHandler(authService, cookieOpts)
	accountHandler := handlers.NewAccountHandler(authService, postService, pictures)
	resetHandler := handlers.NewPasswordResetHandler(resetService, authService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	postHandler := handlers.NewPostHandler(postService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "FollowTheFood is running",
		})
	})

	// Public routes
	r.GET("/", pagesHandler.Home)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/contact", pagesHandler.ShowContact)
	r.POST("/contact", pagesHandler.Contact)
	r.GET("/firm/:name", directoryHandler.FirmPage)
	r.GET("/reset_password", resetHandler.ShowRequest)
	r.POST("/reset_password", resetHandler.Request)
	r.GET("/reset_password/:token", resetHandler.ShowConfirm)
	r.POST("/reset_password/:token", resetHandler.Confirm)
	r.GET("/db-search", directoryHandler.Search)
	r.GET("/post/:id", postHandler.ShowPost)

	// Authenticated routes
	r.GET("/account", middleware.RequireAuth(), accountHandler.Show)
	r.POST("/account", middleware.RequireAuth(), accountHandler.Update)
	r.GET("/product/:id", middleware.RequireAuth(), directoryHandler.ProductPage)
	r.GET("/post/new", middleware.RequireAuth(), postHandler.NewPostPage)
	r.POST("/post/new", middleware.RequireAuth(), postHandler.CreatePost)
	r.GET("/post/:id/update", middleware.RequireAuth(), postHandler.EditPostPage)
	r.POST("/post/:id/update", middleware.RequireAuth(), postHandler.UpdatePost)
	r.POST("/post/:id/delete", middleware.RequireAuth(), postHandler.DeletePost)

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
