package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/controllers"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/metrics"
)

// HealthCheck reports whether the service's dependencies are reachable
type HealthCheck func(ctx context.Context) error

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	driveController *controllers.DriveController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
	health HealthCheck,
) {
	// Every route sees the session, if any; guards decide what it must be
	router.Use(authMiddleware.LoadSession())

	// --- Public routes ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "placement",
			"login":   "/login",
			"register": gin.H{
				"student": "/register/student",
				"company": "/register/company",
			},
		})
	})
	router.GET("/login", authController.LoginForm)
	router.POST("/login", loginLimiter.Handler(), authController.Login)
	router.GET("/logout", authController.Logout)
	router.POST("/logout", authController.Logout)

	register := router.Group("/register")
	{
		register.POST("/student", authController.RegisterStudent)
		register.POST("/company", authController.RegisterCompany)
	}

	// --- Role-protected routes ---
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/student", authMiddleware.RoleRequired(models.RoleStudent), dashboardController.Student)
		dashboard.GET("/company", authMiddleware.RoleRequired(models.RoleCompany), dashboardController.Company)
		dashboard.GET("/admin", authMiddleware.RoleRequired(models.RoleAdmin), dashboardController.Admin)
	}

	company := router.Group("")
	company.Use(authMiddleware.RoleRequired(models.RoleCompany))
	{
		company.POST("/post-drive", driveController.PostDrive)
		company.GET("/view-applications/:driveId", applicationController.ViewApplications)
	}

	student := router.Group("")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/apply/:driveId", applicationController.Apply)
	}

	// --- Operational routes ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if health != nil {
			if err := health(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
