// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/metrics"
)

// AuthService is the authentication behaviour the controller needs
type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Logout(ctx context.Context, token string)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.StudentProfile, error)
	RegisterCompany(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.CompanyProfile, error)
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthController handles login, logout and registration
type AuthController struct {
	authService    AuthService
	authMiddleware *middleware.AuthMiddleware
	cookie         CookieConfig
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthService, authMiddleware *middleware.AuthMiddleware, cookie CookieConfig, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		authMiddleware: authMiddleware,
		cookie:         cookie,
		logger:         logger,
	}
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials, sets the session cookie and returns the role's dashboard
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many login attempts"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	metrics.RecordLogin(err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(time.Until(result.Session.ExpiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, result.Token, maxAge, "/", "", c.cookie.Secure, true)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		AccountID: result.Account.ID,
		Email:     result.Account.Email,
		Role:      result.Role.String(),
		Redirect:  result.Redirect,
		ExpiresIn: int64(maxAge),
	}, "Login successful"))
}

// LoginForm describes the login form. A caller that already holds a session is
// pointed at its dashboard instead.
// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Login form or current dashboard"
// @Router /login [get]
func (c *AuthController) LoginForm(ctx *gin.Context) {
	if session := middleware.CurrentSession(ctx); session != nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
			"authenticated": true,
			"role":          session.Role.String(),
			"redirect":      session.Role.DashboardPath(),
		}, "Already logged in"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"authenticated": false,
		"fields":        []string{"email", "password"},
		"action":        "/login",
	}, "Please log in"))
}

// Logout clears the session. It always succeeds.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.authService.Logout(ctx.Request.Context(), c.authMiddleware.SessionToken(ctx))

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, "", -1, "/", "", c.cookie.Secure, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"redirect": "/login"}, "Logged out"))
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration"
// @Success 201 {object} dto.APIResponse{data=dto.StudentProfileResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid CGPA, weak password or missing field"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		metrics.RecordRegistration(models.RoleStudent.String(), false)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	metrics.RecordRegistration(models.RoleStudent.String(), err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewStudentProfileResponse(student), "Registration successful. Please log in."))
}

// RegisterCompany handles company registration
// @Summary Register a company
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.RegisterCompanyRequest true "Company registration"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyProfileResponse} "Company registered"
// @Failure 400 {object} dto.ErrorResponse "Weak password or missing field"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /register/company [post]
func (c *AuthController) RegisterCompany(ctx *gin.Context) {
	var req dto.RegisterCompanyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company registration payload")
		metrics.RecordRegistration(models.RoleCompany.String(), false)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.authService.RegisterCompany(ctx.Request.Context(), &req)
	metrics.RecordRegistration(models.RoleCompany.String(), err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCompanyProfileResponse(company), "Registration successful. Please log in."))
}
