package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ninniks/ProjectManagement/internal/adapter/http/handlers"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/login", authHandler.Login)

		projects := api.Group("/projects")
		projects.Use(middleware.AuthMiddleware(jwtSecret))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:project_id", projectHandler.GetProject)
			projects.GET("/:project_id/tasks", taskHandler.ListProjectTasks)
			projects.GET("/:project_id/tasks/:task_id", taskHandler.GetProjectTask)
			projects.POST("/:project_id/tasks", taskHandler.CreateProjectTask)

			// Gin's router refuses a literal "tasks" child next to a status
			// wildcard on the same PATCH level, so these routes share the
			// :section parameter and the handlers dispatch on its value.
			projects.PATCH("/:project_id", projectHandler.UpdateProject)
			projects.PATCH("/:project_id/:section", projectHandler.UpdateProjectStatus)
			projects.PATCH("/:project_id/:section/:task_id", taskHandler.UpdateProjectTask)
			projects.PATCH("/:project_id/:section/:task_id/:status", taskHandler.UpdateProjectTaskStatus)
		}
	}
}
