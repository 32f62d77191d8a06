package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/helpers"
	"github.com/yigit/placement/internal/pkg/validation"
)

// LoginResult is the outcome of a successful login
type LoginResult struct {
	Account  *models.Account
	Role     models.RoleType
	Token    string
	Session  *auth.Session
	Redirect string
}

// AuthService handles authentication operations
type AuthService struct {
	accounts AccountStore
	sessions *auth.SessionService
	revoker  auth.SessionRevoker
	hasher   auth.PasswordHasher
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accounts AccountStore,
	sessions *auth.SessionService,
	revoker auth.SessionRevoker,
	hasher auth.PasswordHasher,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		revoker:  revoker,
		hasher:   hasher,
		logger:   logger,
	}
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = validation.CanonicalEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("email", email).Msg("Error loading account for login")
		return nil, apperrors.NewStorageError("login", err)
	}

	if !s.hasher.Compare(account.Password, password) {
		s.logger.Debug().Int64("accountID", account.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	role, ok := models.ParseRole(string(account.Role))
	if !ok {
		s.logger.Error().Int64("accountID", account.ID).Str("role", string(account.Role)).Msg("Account has an unknown role")
		return nil, apperrors.ErrInvalidCredentials
	}
	account.Role = role

	token, session, err := s.sessions.Issue(account)
	if err != nil {
		s.logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error issuing session token")
		return nil, apperrors.NewStorageError("issue session", err)
	}

	if err := s.accounts.UpdateLastLogin(ctx, account.ID); err != nil {
		// login still succeeds
		s.logger.Warn().Err(err).Int64("accountID", account.ID).Msg("Failed to record last login")
	}

	s.logger.Info().Int64("accountID", account.ID).Str("role", role.String()).Msg("User logged in")
	return &LoginResult{
		Account:  account,
		Role:     role,
		Token:    token,
		Session:  session,
		Redirect: role.DashboardPath(),
	}, nil
}

// Logout revokes the session token until it would have expired. It never fails.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}

	session, err := s.sessions.Validate(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Logout with an unusable session token")
		return
	}

	ttl := time.Until(session.ExpiresAt)
	if err := s.revoker.Revoke(ctx, session.TokenID, ttl); err != nil {
		s.logger.Error().Err(err).Int64("accountID", session.AccountID).Msg("Failed to revoke session")
		return
	}
	s.logger.Info().Int64("accountID", session.AccountID).Msg("User logged out")
}

// RegisterStudent registers a new student account with its profile.
// Checks run in order: CGPA range, password length, email uniqueness.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.StudentProfile, error) {
	cgpa, err := validation.ParseCGPA(req.CGPA)
	if err != nil {
		return nil, err
	}

	email, hash, err := s.prepareAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:    email,
		Password: hash,
		Role:     models.RoleStudent,
	}
	student := &models.StudentProfile{
		FullName:  req.FullName,
		CGPA:      cgpa,
		Branch:    req.Branch,
		ResumeURL: helpers.OptionalString(req.ResumeURL),
	}

	if err := s.accounts.RegisterStudent(ctx, account, student); err != nil {
		return nil, s.registrationError("register student", email, err)
	}

	s.logger.Info().Int64("accountID", account.ID).Int64("studentID", student.ID).Msg("Student registered")
	return student, nil
}

// RegisterCompany registers a new company account with its profile
func (s *AuthService) RegisterCompany(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.CompanyProfile, error) {
	email, hash, err := s.prepareAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:    email,
		Password: hash,
		Role:     models.RoleCompany,
	}
	company := &models.CompanyProfile{
		CompanyName:    req.CompanyName,
		HRContact:      req.HRContact,
		Website:        req.Website,
		ApprovalStatus: models.ApprovalPending,
	}

	if err := s.accounts.RegisterCompany(ctx, account, company); err != nil {
		return nil, s.registrationError("register company", email, err)
	}

	s.logger.Info().Int64("accountID", account.ID).Int64("companyID", company.ID).Msg("Company registered")
	return company, nil
}

// prepareAccount checks the password and email, then hashes the password
func (s *AuthService) prepareAccount(ctx context.Context, rawEmail, password string) (string, string, error) {
	if err := validation.ValidatePassword(password); err != nil {
		return "", "", err
	}

	email := validation.CanonicalEmail(rawEmail)
	if !validation.IsEmail(email) {
		return "", "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "email must be a valid email address")
	}

	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error checking if email exists")
		return "", "", apperrors.NewStorageError("check email", err)
	}
	if exists {
		return "", "", apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error hashing password")
		return "", "", apperrors.NewStorageError("hash password", err)
	}
	return email, hash, nil
}

func (s *AuthService) registrationError(op, email string, err error) error {
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return apperrors.ErrEmailAlreadyExists
	}
	s.logger.Error().Err(err).Str("op", op).Str("email", email).Msg("Registration failed")
	return apperrors.NewStorageError(op, err)
}
