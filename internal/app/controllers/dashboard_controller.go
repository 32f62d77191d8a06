package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/auth"
)

// DashboardService provides the dashboard read models
type DashboardService interface {
	StudentDashboard(ctx context.Context, session *auth.Session) (*services.StudentDashboard, error)
	CompanyDashboard(ctx context.Context, session *auth.Session) (*services.CompanyDashboard, error)
	AdminDashboard(ctx context.Context, session *auth.Session) (*services.AdminDashboard, error)
}

// DashboardController serves the role dashboards
type DashboardController struct {
	dashboardService DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Student lists every drive with applied and eligible flags
// @Summary Student dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Please log in as a student"
// @Router /dashboard/student [get]
func (c *DashboardController) Student(ctx *gin.Context) {
	dash, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewStudentDashboardResponse(dash.Student, dash.Drives, dash.AppliedDriveIDs), ""))
}

// Company lists the drives posted by the caller
// @Summary Company dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Please log in as a company"
// @Router /dashboard/company [get]
func (c *DashboardController) Company(ctx *gin.Context) {
	dash, err := c.dashboardService.CompanyDashboard(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCompanyDashboardResponse(dash.Company, dash.Drives), ""))
}

// Admin lists registered companies and students
func (c *DashboardController) Admin(ctx *gin.Context) {
	dash, err := c.dashboardService.AdminDashboard(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAdminDashboardResponse(dash.Companies, dash.Students), ""))
}
