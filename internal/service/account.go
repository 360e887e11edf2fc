package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/repo"
)

// ErrWeakPassword signals a password below the minimum length.
var ErrWeakPassword = errors.New("account: password must be at least 8 characters")

// AccountStore is the slice of the account repository this service needs.
type AccountStore interface {
	GetAccountByID(ctx context.Context, id int) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) error
}

type Account struct {
	AccountRepo AccountStore
}

func NewAccount(accountRepo *repo.Account) *Account {
	return &Account{
		AccountRepo: accountRepo,
	}
}

// Login checks credentials against the stored bcrypt hash. The same 401
// answers both unknown usernames and wrong passwords, so the login form
// leaks nothing about which accounts exist.
func (s *Account) Login(ctx context.Context, username, password string) (*model.Account, error) {
	account, err := s.AccountRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, apperr.ErrUnauthorized.Msg("invalid username or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrUnauthorized.Msg("invalid username or password")
	}

	return account, nil
}

func (s *Account) GetByID(ctx context.Context, id int) (*model.Account, error) {
	return s.AccountRepo.GetAccountByID(ctx, id)
}

// CreateAccount provisions a back-office account with a bcrypt-hashed
// password. Used by the seed command; there is no public registration.
func (s *Account) CreateAccount(ctx context.Context, username, password string) (*model.Account, error) {
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
