package router

import (
	"net/http"

	"github.com/careerlane/job-board-be/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint with a store ping
	r.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "job-board-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "job-board-api",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	appHandler := handler.NewApplicationHandler(deps)

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PUT("/:id", jobHandler.UpdateJob)
			jobs.DELETE("/:id", jobHandler.DeleteJob)

			jobs.GET("/:id/applications", appHandler.ListJobApplications)
			jobs.POST("/:id/apply", appHandler.ApplyForJob)
		}

		applications := api.Group("/applications")
		{
			applications.GET("", appHandler.ListApplications)
			applications.GET("/:id", appHandler.GetApplication)
		}
	}

	return r
}
