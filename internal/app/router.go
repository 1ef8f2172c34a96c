package app

import (
	"vidyai_backend/docs"
	"vidyai_backend/internal/config"
	"vidyai_backend/internal/middleware"
	"vidyai_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Voice navigation must work before login so the command that
		// reaches the login page itself can be routed.
		public.POST("/voice_command", c.voice.HandleCommand)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.profile.GetProfile)
	rg.PUT("/profile", c.profile.UpdateProfile)
	rg.GET("/dashboard", c.dashboard.GetDashboard)

	// Content and activities
	rg.GET("/learn", c.learning.ListContent)
	rg.GET("/learn/:id", c.learning.ViewContent)
	rg.POST("/complete_activity", c.learning.CompleteActivity)
	rg.POST("/generate_content", c.learning.GenerateContent)

	// Learning style assessment
	rg.GET("/assessment", c.assessment.GetAssessment)
	rg.POST("/learning_style_assessment", c.assessment.SubmitAssessment)

	// Mentorship
	rg.GET("/mentors", c.mentor.ListMentors)
	rg.POST("/request_mentor/:id", c.mentor.RequestMentor)

	// Computer vision
	rg.POST("/emotion_detection", c.vision.DetectEmotion)
	rg.POST("/track_engagement", c.vision.TrackEngagement)

	// Offline content
	rg.GET("/offline", c.offline.ListOfflineContent)
	rg.POST("/offline/:contentId", c.offline.PackageContent)

	rg.POST("/logout", c.auth.Logout)
}
