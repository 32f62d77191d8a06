package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type memoryAccounts struct {
	accounts  map[string]*appModels.Account
	createErr error
}

func (m *memoryAccounts) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.accounts[email]
	return ok, nil
}

func (m *memoryAccounts) CreateAccount(_ context.Context, account *appModels.Account) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	account.ID = int64(len(m.accounts) + 1)
	m.accounts[account.Email] = account
	return account.ID, nil
}

var (
	lgr    = zerolog.New(io.Discard)
	hasher = &auth.BcryptHasher{Cost: bcrypt.MinCost}
)

func TestCreateAdmin(t *testing.T) {
	store := &memoryAccounts{accounts: map[string]*appModels.Account{}}
	ctx := context.Background()

	require.NoError(t, CreateAdmin(ctx, store, hasher, " Admin@College.edu ", "admin123", lgr))
	admin := store.accounts["admin@college.edu"]
	require.NotNil(t, admin)
	assert.Equal(t, appModels.RoleAdmin, admin.Role)
	assert.True(t, hasher.Compare(admin.Password, "admin123"))

	// idempotent
	require.NoError(t, CreateAdmin(ctx, store, hasher, "admin@college.edu", "admin123", lgr))
	assert.Len(t, store.accounts, 1)
}

func TestCreateAdminSkipsAndFails(t *testing.T) {
	store := &memoryAccounts{accounts: map[string]*appModels.Account{}}
	ctx := context.Background()

	assert.NoError(t, CreateAdmin(ctx, store, hasher, "", "", lgr))
	assert.Empty(t, store.accounts)

	assert.ErrorIs(t, CreateAdmin(ctx, store, hasher, "admin@college.edu", "123", lgr), apperrors.ErrWeakPassword)
	assert.Error(t, CreateAdmin(ctx, store, hasher, "admin", "admin123", lgr))
	assert.Empty(t, store.accounts)

	store.createErr = apperrors.ErrEmailAlreadyExists
	assert.NoError(t, CreateAdmin(ctx, store, hasher, "admin@college.edu", "admin123", lgr))

	store.createErr = errors.New("db down")
	assert.Error(t, CreateAdmin(ctx, store, hasher, "admin@college.edu", "admin123", lgr))
}
