package app

import (
	"edu_assessment_backend/docs"
	"edu_assessment_backend/internal/config"
	"edu_assessment_backend/internal/middleware"
	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(authGroup *gin.RouterGroup, c *controllers) {
	authGroup.GET("/assessments", c.assessment.ListAssessments)
	authGroup.GET("/assessments/:id", c.assessment.GetAssessment)
	authGroup.GET("/assessments/:id/questions/detailed", c.assessment.GetQuestionsDetailed)
	authGroup.GET("/assessments/:id/questions", c.question.ListByAssessment)
	authGroup.GET("/assessments/:id/arguments", c.argument.ListByAssessment)

	authGroup.GET("/questions/:id", c.question.GetQuestion)
	authGroup.GET("/questions/:id/options", c.question.ListOptions)
	authGroup.GET("/questions/:id/answer", c.answer.GetAnswer)

	authGroup.GET("/arguments/:id", c.argument.GetArgument)

	authGroup.GET("/lessons/:id", c.lesson.GetLesson)
	authGroup.GET("/modules/:id/lessons", c.lesson.ListByModule)
}

func (a *App) registerTeacherRoutes(authGroup *gin.RouterGroup, c *controllers) {
	teacher := authGroup.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
	{
		teacher.POST("/assessments", c.assessment.CreateAssessment)
		teacher.DELETE("/assessments/:id", c.assessment.DeleteAssessment)

		teacher.POST("/questions", c.question.CreateQuestion)
		teacher.POST("/questions/:id/options", c.question.CreateOption)
		teacher.POST("/questions/:id/answer", c.answer.CreateAnswer)

		teacher.POST("/arguments", c.argument.CreateArgument)

		teacher.POST("/lessons/:id/video", c.lesson.UploadVideo)
	}
}
