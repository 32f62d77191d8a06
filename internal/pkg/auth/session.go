package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// Session token errors
var (
	ErrInvalidToken = apperrors.ErrTokenInvalid
	ErrExpiredToken = apperrors.ErrTokenExpired
)

// Session is the authenticated identity attached to a request
type Session struct {
	AccountID int64
	Role      models.RoleType
	TokenID   string
	ExpiresAt time.Time
}

// Is reports whether the session holds the given role
func (s *Session) Is(role models.RoleType) bool {
	return s != nil && s.AccountID > 0 && s.Role == role
}

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey   string
	TTL         time.Duration
	TokenIssuer string
}

// SessionService signs and validates session tokens
type SessionService struct {
	config SessionConfig
	now    func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
		now:    time.Now,
	}
}

// Claims defines session token content
type Claims struct {
	AccountID int64  `json:"accountId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the account
func (s *SessionService) Issue(account *models.Account) (string, *Session, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TTL)

	claims := &Claims{
		AccountID: account.ID,
		Role:      string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   strconv.FormatInt(account.ID, 10),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, &Session{
		AccountID: account.ID,
		Role:      account.Role,
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses a session token and returns the session it carries
func (s *SessionService) Validate(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.TokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID <= 0 {
		return nil, ErrInvalidToken
	}

	role, ok := models.ParseRole(claims.Role)
	if !ok {
		return nil, ErrInvalidToken
	}

	session := &Session{
		AccountID: claims.AccountID,
		Role:      role,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
