package app

import (
	"workload_survey/docs"
	"workload_survey/internal/middleware"
	"workload_survey/internal/util"
	"workload_survey/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由: 问卷填写
	a.registerPublicRoutes(router, c)

	// 2. 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(s.auth), middleware.RoleMiddleware(util.RoleAdmin))
	{
		a.registerAdminRoutes(admin, c)
		a.registerReportRoutes(admin, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/welcome", c.survey.Welcome)
		public.GET("/questions", c.survey.Questions)
		public.GET("/personnel", c.survey.SearchPersonnel)
		public.POST("/admin/login", c.auth.Login)

		sessions := public.Group("/sessions")
		{
			sessions.POST("", c.survey.CreateSession)
			sessions.GET("/:id", c.survey.GetSession)
			sessions.PUT("/:id/personnel", c.survey.SelectPersonnel)
			sessions.PUT("/:id/ratings", c.survey.Rate)
			sessions.POST("/:id/next", c.survey.Next)
			sessions.POST("/:id/back", c.survey.Back)
		}
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/data", c.admin.GetData)
	rg.GET("/personnel", c.admin.ListPersonnel)
	rg.POST("/personnel", c.admin.AddPersonnel)
	rg.DELETE("/personnel/:name", c.admin.RemovePersonnel)
	rg.PUT("/weights", c.admin.UpdateWeights)
	rg.PUT("/welcome", c.admin.UpdateWelcome)
	rg.GET("/responses", c.admin.ListResponses)
	rg.POST("/sync", c.admin.Sync)
}

func (a *App) registerReportRoutes(rg *gin.RouterGroup, c *controllers) {
	reports := rg.Group("/reports")
	{
		reports.GET("/summary", c.report.Summary)
		reports.GET("/matrix", c.report.Matrix)
		reports.GET("/export/xlsx", c.report.ExportXLSX)
		reports.GET("/export/doc", c.report.ExportDoc)
		reports.POST("/archive", c.report.Archive)
	}
}
