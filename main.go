package main

import (
	"context"
	"log"
	"os"
	"time"

	"codeforge/database"
	"codeforge/handlers"
	"codeforge/piston"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	runner := piston.NewClient(os.Getenv("PISTON_URL"))

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{corsOrigin}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")

	api.POST("/execute", handlers.Execute(runner))
	api.GET("/execute/runtimes", handlers.ListRuntimes(runner))

	api.POST("/gists", handlers.CreateGist(db))
	api.GET("/gists", handlers.ListGists(db))
	api.GET("/gists/:id", handlers.GetGist(db))
	api.PUT("/gists/:id", handlers.UpdateGist(db))
	api.DELETE("/gists/:id", handlers.DeleteGist(db))

	api.POST("/projects", handlers.CreateProject(db))
	api.GET("/projects", handlers.ListProjects(db))
	api.GET("/projects/:id", handlers.GetProject(db))
	api.DELETE("/projects/:id", handlers.DeleteProject(db))
	api.GET("/projects/:id/download", handlers.DownloadProject(db))
	api.POST("/projects/:id/files", handlers.CreateFile(db))
	api.PUT("/projects/:id/files/:fileId", handlers.UpdateFile(db))
	api.DELETE("/projects/:id/files/:fileId", handlers.DeleteFile(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Println("Server starting on :" + port)
	r.Run(":" + port)
}
