package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"

	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerLearnerRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

// Public surface: everything a visitor needs to render the site. Catalog
// reads take optional auth so admins see drafts through the same endpoints.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.GET("/setup/status", c.auth.SetupStatus)
		public.POST("/setup", c.auth.Setup)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/site/config", c.site.GetConfig)

		public.GET("/pages", middleware.TryAuthMiddleware(cfg), c.page.ListPages)
		public.GET("/pages/navigation", c.page.Navigation)
		public.GET("/pages/landing", c.page.LandingPage)
		public.GET("/pages/:slug", c.page.GetPageBySlug)

		public.POST("/contact", c.contact.Submit)

		courses := public.Group("/courses")
		courses.Use(middleware.TryAuthMiddleware(cfg))
		{
			courses.GET("", c.course.ListCourses)
			courses.GET("/featured", c.course.FeaturedCourses)
			courses.GET("/:id", c.course.GetCourse)
			courses.GET("/:id/lessons", c.course.GetCourseLessons)
			courses.GET("/:id/lessons/:lessonId", c.lesson.GetLesson)
		}
	}
}

func (a *App) registerLearnerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", c.auth.Me)
		authed.PUT("/auth/me", c.auth.UpdateProfile)
		authed.PUT("/auth/password", c.auth.ChangePassword)

		authed.GET("/my/enrollments", c.enrollment.MyEnrollments)

		courses := authed.Group("/courses/:id")
		{
			courses.POST("/enroll", c.enrollment.Enroll)
			courses.DELETE("/enroll", c.enrollment.Unenroll)
			courses.GET("/progress", c.enrollment.CourseProgress)
			courses.POST("/lessons/:lessonId/complete", c.enrollment.CompleteLesson)
			courses.POST("/lessons/:lessonId/quiz", c.enrollment.SubmitQuiz)
			courses.GET("/lessons/:lessonId/attempts", c.enrollment.QuizAttempts)
		}
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	{
		admin.GET("/users", c.user.ListUsers)
		admin.POST("/users", c.user.CreateUser)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
		admin.PUT("/courses/:id/reorder", c.course.ReorderLessons)

		admin.POST("/courses/:id/lessons", c.lesson.CreateLesson)
		admin.PUT("/courses/:id/lessons/:lessonId", c.lesson.UpdateLesson)
		admin.DELETE("/courses/:id/lessons/:lessonId", c.lesson.DeleteLesson)

		admin.PUT("/site/config", c.site.UpdateConfig)

		admin.GET("/pages", c.page.ListPages)
		admin.POST("/pages", c.page.CreatePage)
		admin.GET("/pages/:id", c.page.GetPage)
		admin.PUT("/pages/:id", c.page.UpdatePage)
		admin.DELETE("/pages/:id", c.page.DeletePage)

		admin.GET("/media", c.media.ListFiles)
		admin.POST("/media", c.media.Upload)
		admin.GET("/media/:id", c.media.GetFile)
		admin.PUT("/media/:id", c.media.UpdateFile)
		admin.DELETE("/media/:id", c.media.DeleteFile)

		admin.GET("/inquiries", c.contact.ListInquiries)
		admin.GET("/inquiries/unread-count", c.contact.UnreadCount)
		admin.GET("/inquiries/:id", c.contact.GetInquiry)
		admin.PUT("/inquiries/:id/reply", c.contact.MarkReplied)
		admin.DELETE("/inquiries/:id", c.contact.DeleteInquiry)
	}
}
