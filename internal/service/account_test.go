package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

type fakeAccountStore struct {
	accounts map[string]*model.Account
	nextID   int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[string]*model.Account{}, nextID: 1}
}

func (f *fakeAccountStore) GetAccountByID(_ context.Context, id int) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.AccountID == id {
			return a, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeAccountStore) GetAccountByUsername(_ context.Context, username string) (*model.Account, error) {
	if a, ok := f.accounts[username]; ok {
		return a, nil
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeAccountStore) Create(_ context.Context, account *model.Account) error {
	account.AccountID = f.nextID
	f.nextID++
	f.accounts[account.Username] = account
	return nil
}

func TestAccountLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := &Account{AccountRepo: newFakeAccountStore()}

	created, err := s.CreateAccount(ctx, "admin", "correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", created.PasswordHash)

	t.Run("valid credentials", func(t *testing.T) {
		account, err := s.Login(ctx, "admin", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, created.AccountID, account.AccountID)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		_, err := s.Login(ctx, "admin", "wrong")
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 401, e.StatusCode)
	})

	t.Run("unknown username yields the same 401", func(t *testing.T) {
		_, err := s.Login(ctx, "ghost", "whatever")
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 401, e.StatusCode)
	})
}

func TestCreateAccountRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	s := &Account{AccountRepo: newFakeAccountStore()}
	_, err := s.CreateAccount(context.Background(), "admin", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
