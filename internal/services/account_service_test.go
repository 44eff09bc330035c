package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context) ([]db_models.Account, error) {
	accounts := make([]db_models.Account, 0, len(f.byEmail))
	for _, a := range f.byEmail {
		accounts = append(accounts, *a)
	}
	return accounts, nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Ann Traveler",
		Email:       "ann@example.com",
		Password:    "supersecret",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), signUp))

	stored := repo.byEmail["ann@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "user", stored.Role)
	assert.NotEqual(t, "supersecret", stored.PasswordHash, "password must be stored hashed")

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ann@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Ann Traveler",
		Email:       "ann@example.com",
		Password:    "supersecret",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), signUp))

	err := svc.CreateAccount(context.Background(), signUp)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ann Traveler",
		Email:       "ann@example.com",
		Password:    "supersecret",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ann@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetAllAccountsReturnsSummaries(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ann Traveler",
		Email:       "ann@example.com",
		Password:    "supersecret",
	}))
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Bob Traveler",
		Email:       "bob@example.com",
		Password:    "alsosecret",
	}))

	summaries, err := svc.GetAllAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byEmail := make(map[string]bool)
	for _, s := range summaries {
		byEmail[s.Email] = true
		assert.NotEmpty(t, s.Name)
		assert.Equal(t, "user", s.Role)
	}
	assert.True(t, byEmail["ann@example.com"])
	assert.True(t, byEmail["bob@example.com"])
}
