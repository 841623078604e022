package main

import (
	"log"
	"os"

	"newsreel/auth"
	"newsreel/internal/platform"
	"newsreel/projects"
	"newsreel/scripts"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine
}

func NewServer() (*Server, error) {
	platform.LoadEnv()

	db, err := platform.NewDBConnection()
	if err != nil {
		return nil, err
	}
	rdb := platform.NewRedisClient()

	router := gin.Default()

	// Add database to context middleware
	router.Use(func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	})

	// CORS middleware for the frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", os.Getenv("FRONTEND_URL"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	server := &Server{
		DB:     db,
		Redis:  rdb,
		Router: router,
	}

	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	// Health check (no auth required)
	s.Router.GET("/health", func(c *gin.Context) {
		sqlDB, err := s.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	authHandler := auth.NewHandler(s.DB)
	projectHandler := projects.NewHandler(s.DB, s.Redis)
	scriptHandler := scripts.NewHandler(s.DB)

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Newsreel API v1"})
	})

	// Auth routes (public - no auth middleware)
	authRoutes := s.Router.Group("/auth")
	{
		authRoutes.GET("/google", authHandler.InitiateGoogleLogin)
		authRoutes.GET("/google/callback", authHandler.GoogleCallback)
		authRoutes.POST("/logout", authHandler.Logout)

		// Protected auth route - requires auth middleware
		authRoutes.GET("/me", auth.AuthMiddleware(), authHandler.GetCurrentUser)
	}

	// Protected routes that require authentication
	protected := s.Router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		projectRoutes := protected.Group("/projects")
		{
			projectRoutes.POST("", projectHandler.CreateProject)
			projectRoutes.GET("", projectHandler.GetUserProjects)
			projectRoutes.GET("/:id/scripts", projectHandler.GetProjectScripts)
		}

		scriptRoutes := protected.Group("/scripts")
		{
			scriptRoutes.GET("/:id", scriptHandler.GetScript)
			scriptRoutes.GET("/:id/chunks", scriptHandler.GetScriptChunks)
			scriptRoutes.GET("/:id/transcript.srt", scriptHandler.DownloadTranscript)
			scriptRoutes.GET("/:id/chunks.srt", scriptHandler.DownloadChunkTrack)
		}
	}
}

func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	return s.Router.Run(":" + port)
}

func main() {
	server, err := NewServer()
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
