package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/authz"
	"github.com/ah0048/BrainWise-JobTask/internal/config"
	"github.com/ah0048/BrainWise-JobTask/internal/handlers"
	"github.com/ah0048/BrainWise-JobTask/internal/middleware"
	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hr-records-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	service := records.NewService(db)
	authHandler := handlers.NewAuthHandler(service)
	companyHandler := handlers.NewCompanyHandler(service)
	departmentHandler := handlers.NewDepartmentHandler(service)
	employeeHandler := handlers.NewEmployeeHandler(service)
	userHandler := handlers.NewUserHandler(service)
	summaryHandler := handlers.NewSummaryHandler(service)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(db))
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/me/password", authHandler.ChangePassword)
		protected.GET("/summary", summaryHandler.Get)

		protected.GET("/companies", middleware.RequirePermission(authz.ActionCompanyRead), companyHandler.List)
		protected.POST("/companies", middleware.RequirePermission(authz.ActionCompanyCreate), companyHandler.Create)
		protected.GET("/companies/:id", middleware.RequirePermission(authz.ActionCompanyRead), companyHandler.Get)
		protected.PUT("/companies/:id", middleware.RequirePermission(authz.ActionCompanyUpdate), companyHandler.Update)
		protected.DELETE("/companies/:id", middleware.RequirePermission(authz.ActionCompanyDelete), companyHandler.Delete)

		protected.GET("/departments", middleware.RequirePermission(authz.ActionDepartmentRead), departmentHandler.List)
		protected.POST("/departments", middleware.RequirePermission(authz.ActionDepartmentCreate), departmentHandler.Create)
		protected.GET("/departments/:id", middleware.RequirePermission(authz.ActionDepartmentRead), departmentHandler.Get)
		protected.PUT("/departments/:id", middleware.RequirePermission(authz.ActionDepartmentUpdate), departmentHandler.Update)
		protected.DELETE("/departments/:id", middleware.RequirePermission(authz.ActionDepartmentDelete), departmentHandler.Delete)

		protected.GET("/employees", middleware.RequirePermission(authz.ActionEmployeeRead), employeeHandler.List)
		protected.POST("/employees", middleware.RequirePermission(authz.ActionEmployeeCreate), employeeHandler.Create)
		protected.GET("/employees/:id", middleware.RequirePermission(authz.ActionEmployeeRead), employeeHandler.Get)
		protected.PUT("/employees/:id", middleware.RequirePermission(authz.ActionEmployeeUpdate), employeeHandler.Update)
		protected.DELETE("/employees/:id", middleware.RequirePermission(authz.ActionEmployeeDelete), employeeHandler.Delete)

		protected.GET("/users", middleware.RequirePermission(authz.ActionUserList), userHandler.List)
		protected.POST("/users", middleware.RequirePermission(authz.ActionUserCreate), userHandler.Create)
		// Self-access on a user's own record is resolved inside the handler.
		protected.GET("/users/:id", userHandler.Get)
		protected.PUT("/users/:id", userHandler.Update)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			// The response depends on the Origin header whether or not it
			// matched, so caches must always key on it.
			c.Writer.Header().Set("Vary", "Origin")
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
