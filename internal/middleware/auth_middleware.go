package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
)

const sessionContextKey = "session"

// AuthMiddleware attaches sessions to requests and guards role-protected routes
type AuthMiddleware struct {
	sessions   *auth.SessionService
	revoker    auth.SessionRevoker
	cookieName string
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService, revoker auth.SessionRevoker, cookieName string, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		revoker:    revoker,
		cookieName: cookieName,
		logger:     logger,
	}
}

// CookieName returns the name of the session cookie
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// SessionToken extracts the raw session token from the cookie, falling back to
// an "Authorization: Bearer" header for API clients.
func (m *AuthMiddleware) SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// LoadSession validates the session token, if any, and stores the session in the
// request context. Requests without a usable session continue anonymously.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := m.sessions.Validate(token)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Ignoring unusable session token")
			c.Next()
			return
		}

		revoked, err := m.revoker.IsRevoked(c.Request.Context(), session.TokenID)
		if err != nil {
			// a revocation store outage must not let a logged-out token through
			m.logger.Error().Err(err).Int64("accountID", session.AccountID).Msg("Failed to check session revocation")
			c.Next()
			return
		}
		if revoked {
			c.Next()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RoleRequired rejects requests whose session does not hold role
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Is(role) {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrUnauthorized, LoginPrompt(role)))
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession, or nil
func CurrentSession(c *gin.Context) *auth.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, _ := value.(*auth.Session)
	return session
}

// LoginPrompt is the message shown when a request lacks the session for role
func LoginPrompt(role models.RoleType) string {
	switch role {
	case models.RoleAdmin:
		return "Please log in as an admin"
	case models.RoleCompany:
		return "Please log in as a company"
	default:
		return "Please log in as a student"
	}
}
