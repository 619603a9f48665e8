package app

import (
	"english_quest_backend/docs"
	"english_quest_backend/internal/config"
	"english_quest_backend/internal/middleware"
	"english_quest_backend/internal/model"
	"english_quest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要登录的学习者路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)

		// 3. 管理员路由
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		a.registerAdminRoutes(admin, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.Profile)
	group.GET("/leaderboard", c.gamification.GetLeaderboard)
	group.GET("/missions", c.gamification.ListMissions)
	group.GET("/preferences/theme", c.preference.GetTheme)
	group.PUT("/preferences/theme", c.preference.SetTheme)

	group.GET("/categories", c.content.ListCategories)

	topics := group.Group("/topics/:topicId")
	{
		topics.GET("", c.content.GetTopic)
		topics.POST("/study", c.assessment.StartStudy)
		topics.POST("/practice-select", c.assessment.OpenPracticeSelect)
		topics.POST("/practice", c.assessment.StartPractice)
		topics.POST("/exam", c.assessment.StartExam)
	}

	assessment := group.Group("/assessment")
	{
		assessment.GET("", c.assessment.State)
		assessment.POST("/answer", c.assessment.Answer)
		assessment.POST("/goto", c.assessment.GoTo)
		assessment.POST("/next", c.assessment.Next)
		assessment.POST("/prev", c.assessment.Prev)
		assessment.POST("/finish", c.assessment.Finish)
		assessment.POST("/exit", c.assessment.Exit)
		assessment.POST("/comic", c.assessment.Comic)
	}

	progress := group.Group("/progress")
	{
		progress.GET("/history", c.analytics.History)
		progress.GET("/stats", c.analytics.Stats)
	}
}

func (a *App) registerAdminRoutes(admin *gin.RouterGroup, c *controllers) {
	users := admin.Group("/users")
	{
		users.GET("", c.user.ListUsers)
		users.POST("", c.user.CreateUser)
		users.DELETE("/:id", c.user.DeleteUser)
	}

	categories := admin.Group("/categories")
	{
		categories.POST("", c.content.CreateCategory)
		categories.PUT("/:categoryId", c.content.UpdateCategory)
		categories.DELETE("/:categoryId", c.content.DeleteCategory)

		categories.POST("/:categoryId/topics", c.content.CreateTopic)

		topic := categories.Group("/:categoryId/topics/:topicId")
		topic.PUT("", c.content.SaveTopic)
		topic.DELETE("", c.content.DeleteTopic)
		topic.POST("/move", c.content.MoveTopic)
		topic.POST("/questions", c.content.AddQuestion)
		topic.DELETE("/questions/:questionId", c.content.DeleteQuestion)
		topic.POST("/questions/:questionId/move", c.content.MoveQuestion)
		topic.POST("/generate/theory", c.content.GenerateTheory)
		topic.POST("/generate/questions", c.content.GenerateQuestions)
	}

	admin.GET("/analytics/students/:userId", c.analytics.StudentReport)
}
