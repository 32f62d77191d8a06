package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/validation"
)

// AccountCreator creates accounts that have no profile
type AccountCreator interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateAccount(ctx context.Context, account *appModels.Account) (int64, error)
}

// CreateAdmin creates the admin account if it does not exist yet. Admin accounts
// cannot register through the API, so this is the only way one is created.
func CreateAdmin(ctx context.Context, accounts AccountCreator, hasher auth.PasswordHasher, email, password string, lgr zerolog.Logger) error {
	email = validation.CanonicalEmail(email)
	if email == "" {
		lgr.Info().Msg("No admin account configured, skipping admin seed")
		return nil
	}
	if !validation.IsEmail(email) {
		return fmt.Errorf("admin email %q is not a valid address", email)
	}

	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("admin password: %w", err)
	}

	exists, err := accounts.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking admin account: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Admin account already exists")
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	id, err := accounts.CreateAccount(ctx, &appModels.Account{
		Email:    email,
		Password: hash,
		Role:     appModels.RoleAdmin,
	})
	if err != nil {
		// another instance seeded it first
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Int64("accountID", id).Str("email", email).Msg("Admin account created")
	return nil
}
