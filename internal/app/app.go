package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/rpspoonia/project-management-system/internal/config"
	"github.com/rpspoonia/project-management-system/internal/handlers"
	"github.com/rpspoonia/project-management-system/internal/repositories"
	"github.com/rpspoonia/project-management-system/internal/routes"
	"github.com/rpspoonia/project-management-system/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("Database unreachable: ", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// === Repos ===
	orgRepo := repositories.NewOrganizationRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	commentRepo := repositories.NewTaskCommentRepository(db)

	// === Services ===
	slugAllocator := services.NewSlugAllocator(orgRepo, cfg.Slug.MaxAttempts)
	orgService := services.NewOrganizationService(orgRepo, slugAllocator)
	projectService := services.NewProjectService(projectRepo, orgRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, commentRepo)

	// === Handlers ===
	orgHandler := handlers.NewOrganizationHandler(orgService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	routes.SetupRoutes(router, orgHandler, projectHandler, taskHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
