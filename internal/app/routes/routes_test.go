package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/controllers"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/auth"
)

var testLogger = zerolog.New(io.Discard)

func init() {
	gin.SetMode(gin.TestMode)
}

// recorder counts the service calls that reach the handlers
type recorder struct {
	calls []string
}

func (r *recorder) Login(context.Context, string, string) (*services.LoginResult, error) {
	r.calls = append(r.calls, "login")
	return nil, errors.New("not used")
}
func (r *recorder) Logout(context.Context, string) { r.calls = append(r.calls, "logout") }
func (r *recorder) RegisterStudent(context.Context, *dto.RegisterStudentRequest) (*models.StudentProfile, error) {
	r.calls = append(r.calls, "registerStudent")
	return &models.StudentProfile{}, nil
}
func (r *recorder) RegisterCompany(context.Context, *dto.RegisterCompanyRequest) (*models.CompanyProfile, error) {
	r.calls = append(r.calls, "registerCompany")
	return &models.CompanyProfile{}, nil
}
func (r *recorder) StudentDashboard(context.Context, *auth.Session) (*services.StudentDashboard, error) {
	r.calls = append(r.calls, "studentDashboard")
	return &services.StudentDashboard{Student: &models.StudentProfile{}}, nil
}
func (r *recorder) CompanyDashboard(context.Context, *auth.Session) (*services.CompanyDashboard, error) {
	r.calls = append(r.calls, "companyDashboard")
	return &services.CompanyDashboard{Company: &models.CompanyProfile{}}, nil
}
func (r *recorder) AdminDashboard(context.Context, *auth.Session) (*services.AdminDashboard, error) {
	r.calls = append(r.calls, "adminDashboard")
	return &services.AdminDashboard{}, nil
}
func (r *recorder) PostDrive(context.Context, *auth.Session, *dto.PostDriveRequest) (*models.Drive, error) {
	r.calls = append(r.calls, "postDrive")
	return &models.Drive{}, nil
}
func (r *recorder) Apply(context.Context, *auth.Session, int64) (*models.Application, error) {
	r.calls = append(r.calls, "apply")
	return &models.Application{}, nil
}
func (r *recorder) ViewApplications(context.Context, *auth.Session, int64) (*models.Drive, []*models.Application, error) {
	r.calls = append(r.calls, "viewApplications")
	return &models.Drive{}, nil, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *recorder, *auth.SessionService) {
	t.Helper()
	sessions := auth.NewSessionService(auth.SessionConfig{SecretKey: "test-secret", TTL: time.Hour, TokenIssuer: "test"})
	authMiddleware := middleware.NewAuthMiddleware(sessions, auth.NewMemorySessionRevoker(), "placement_session", testLogger)
	rec := &recorder{}

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(rec, authMiddleware, controllers.CookieConfig{Name: "placement_session"}, testLogger),
		controllers.NewDashboardController(rec, testLogger),
		controllers.NewDriveController(rec, testLogger),
		controllers.NewApplicationController(rec, testLogger),
		authMiddleware,
		middleware.NewRateLimiter(60, 2, testLogger),
		func(context.Context) error { return nil },
	)
	return router, rec, sessions
}

func TestProtectedRoutesRejectWrongRoleWithoutSideEffects(t *testing.T) {
	router, rec, sessions := newTestRouter(t)
	studentToken, _, err := sessions.Issue(&models.Account{ID: 1, Role: models.RoleStudent})
	require.NoError(t, err)
	companyToken, _, err := sessions.Issue(&models.Account{ID: 2, Role: models.RoleCompany})
	require.NoError(t, err)

	tests := []struct {
		method, path, token, prompt string
	}{
		{http.MethodGet, "/dashboard/student", "", "Please log in as a student"},
		{http.MethodGet, "/dashboard/student", companyToken, "Please log in as a student"},
		{http.MethodGet, "/dashboard/company", studentToken, "Please log in as a company"},
		{http.MethodGet, "/dashboard/admin", companyToken, "Please log in as an admin"},
		{http.MethodPost, "/post-drive", studentToken, "Please log in as a company"},
		{http.MethodGet, "/view-applications/1", studentToken, "Please log in as a company"},
		{http.MethodPost, "/apply/1", companyToken, "Please log in as a student"},
		{http.MethodPost, "/apply/1", "", "Please log in as a student"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: "placement_session", Value: tt.token})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.prompt, resp.Error.Message)
		})
	}
	assert.Empty(t, rec.calls)
}

func TestProtectedRoutesReachHandlersWithMatchingRole(t *testing.T) {
	router, rec, sessions := newTestRouter(t)
	studentToken, _, _ := sessions.Issue(&models.Account{ID: 1, Role: models.RoleStudent})
	companyToken, _, _ := sessions.Issue(&models.Account{ID: 2, Role: models.RoleCompany})
	adminToken, _, _ := sessions.Issue(&models.Account{ID: 3, Role: models.RoleAdmin})

	requests := []struct {
		method, path, token, body string
	}{
		{http.MethodGet, "/dashboard/student", studentToken, ""},
		{http.MethodGet, "/dashboard/company", companyToken, ""},
		{http.MethodGet, "/dashboard/admin", adminToken, ""},
		{http.MethodPost, "/post-drive", companyToken, `{"jobTitle":"Engineer","minCgpa":"7","deadline":"2099-01-01T10:00"}`},
		{http.MethodGet, "/view-applications/4", companyToken, ""},
		{http.MethodPost, "/apply/4", studentToken, ""},
	}
	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "placement_session", Value: r.token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Less(t, w.Code, 300, r.path)
	}

	assert.Equal(t, []string{"studentDashboard", "companyDashboard", "adminDashboard", "postDrive", "viewApplications", "apply"}, rec.calls)
}

func TestLoginIsRateLimited(t *testing.T) {
	router, _, _ := newTestRouter(t)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a@b.co&password=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestOperationalRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/", "/login", "/ping", "/health", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
