package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpspoonia/project-management-system/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	orgHandler *handlers.OrganizationHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
) *gin.Engine {

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// ORGANIZATIONS
	orgs := r.Group("/organizations")
	{
		orgs.POST("/", orgHandler.Create)
		orgs.GET("/", orgHandler.List)
		orgs.DELETE("/:slug", orgHandler.Delete)
		orgs.GET("/:slug/projects", projectHandler.ListByOrganization)
		orgs.POST("/:slug/projects", projectHandler.Create)
	}

	// PROJECTS
	projects := r.Group("/projects")
	{
		projects.PUT("/:id", projectHandler.Update)
		projects.GET("/:id/tasks", taskHandler.ListByProject)
		projects.POST("/:id/tasks", taskHandler.Create)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.PUT("/:id", taskHandler.Update)
		tasks.POST("/:id/comments", taskHandler.AddComment)
	}

	return r
}
