package router

import (
	"time"

	"github.com/folio-dev/folio/internal/handlers"
	"github.com/folio-dev/folio/internal/middleware"
	"github.com/folio-dev/folio/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Blanket cap on every route, matching the public-facing posture of
	// the API: nothing here needs more than this.
	r.Use(middleware.RateLimit(300, 15*time.Minute))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
		}

		profile := api.Group("/profile")
		{
			profile.GET("/me", middleware.AuthMiddleware(), handlers.GetMyProfile)
			profile.PUT("/me", middleware.AuthMiddleware(), handlers.UpsertProfile)
			profile.GET("/public", handlers.GetPublicProfile)
		}

		projects := api.Group("/projects")
		{
			projects.GET("/me", middleware.AuthMiddleware(), handlers.GetMyProjects)
			projects.POST("", middleware.AuthMiddleware(), handlers.CreateProject)
			projects.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdateProject)
			projects.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteProject)
			projects.GET("/public", handlers.GetPublicProjects)
		}

		caseStudies := api.Group("/case-studies")
		{
			caseStudies.GET("/me", middleware.AuthMiddleware(), handlers.GetMyCaseStudies)
			caseStudies.POST("", middleware.AuthMiddleware(), handlers.CreateCaseStudy)
			caseStudies.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdateCaseStudy)
			caseStudies.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteCaseStudy)
			caseStudies.GET("/public", handlers.GetPublicCaseStudies)
		}

		uploads := api.Group("/uploads")
		{
			uploads.POST("", middleware.AuthMiddleware(), handlers.HandleUpload)
			uploads.GET("/:filename", handlers.GetFile)
		}

		template := api.Group("/template")
		{
			template.POST("/clone", handlers.CloneTemplate)
		}
	}

	return r
}
