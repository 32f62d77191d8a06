package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/metrics"
)

// DriveService posts drives
type DriveService interface {
	PostDrive(ctx context.Context, session *auth.Session, req *dto.PostDriveRequest) (*models.Drive, error)
}

// DriveController handles drive posting
type DriveController struct {
	driveService DriveService
	logger       zerolog.Logger
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService DriveService, logger zerolog.Logger) *DriveController {
	return &DriveController{
		driveService: driveService,
		logger:       logger,
	}
}

// PostDrive creates a drive for the calling company
// @Summary Post a drive
// @Tags drives
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.PostDriveRequest true "Drive"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse} "Drive posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid CGPA or past deadline"
// @Failure 401 {object} dto.ErrorResponse "Please log in as a company"
// @Router /post-drive [post]
func (c *DriveController) PostDrive(ctx *gin.Context) {
	var req dto.PostDriveRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid drive payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	drive, err := c.driveService.PostDrive(ctx.Request.Context(), middleware.CurrentSession(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	metrics.RecordDrivePosted()

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewDriveResponse(drive), "Drive posted successfully"))
}
