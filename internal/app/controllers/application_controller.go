package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/metrics"
)

// ApplicationService applies to drives and lists applications
type ApplicationService interface {
	Apply(ctx context.Context, session *auth.Session, driveID int64) (*models.Application, error)
	ViewApplications(ctx context.Context, session *auth.Session, driveID int64) (*models.Drive, []*models.Application, error)
}

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// parseDriveID reads the driveId path parameter
func parseDriveID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("driveId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Apply submits the calling student's application
// @Summary Apply to a drive
// @Tags applications
// @Produce json
// @Param driveId path int true "Drive ID"
// @Success 201 {object} dto.APIResponse{data=dto.ApplyResponse} "Application submitted"
// @Failure 401 {object} dto.ErrorResponse "Please log in as a student"
// @Failure 403 {object} dto.ErrorResponse "Not eligible"
// @Failure 404 {object} dto.ErrorResponse "This job is no longer available"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /apply/{driveId} [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	driveID, ok := parseDriveID(ctx)
	if !ok {
		metrics.RecordApplyOutcome(string(services.OutcomeDriveNotFound))
		middleware.HandleAPIError(ctx, apperrors.ErrDriveNotFound)
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), middleware.CurrentSession(ctx), driveID)
	outcome := services.ApplyOutcomeOf(err)
	metrics.RecordApplyOutcome(string(outcome))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ApplyResponse{
		Outcome:       string(outcome),
		ApplicationID: app.ID,
		DriveID:       app.DriveID,
		AppliedAt:     app.AppliedAt,
		Status:        string(app.Status),
	}, "Application submitted successfully."))
}

// ViewApplications lists the applications of a drive owned by the caller
// @Summary View a drive's applications
// @Tags applications
// @Produce json
// @Param driveId path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveApplicationsResponse}
// @Failure 401 {object} dto.ErrorResponse "Please log in as a company"
// @Failure 403 {object} dto.ErrorResponse "Drive not owned by the caller"
// @Router /view-applications/{driveId} [get]
func (c *ApplicationController) ViewApplications(ctx *gin.Context) {
	driveID, ok := parseDriveID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrForbidden)
		return
	}

	drive, apps, err := c.applicationService.ViewApplications(ctx.Request.Context(), middleware.CurrentSession(ctx), driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDriveApplicationsResponse(drive, apps), ""))
}
