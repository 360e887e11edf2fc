package repo

import (
	"context"

	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/repo/selector"
)

type Account struct {
	db  *bun.DB
	sel selector.S[model.Account]
}

func NewAccount(db *bun.DB) *Account {
	return &Account{db: db, sel: selector.New[model.Account](db)}
}

func (r *Account) GetAccountByID(ctx context.Context, id int) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("account_id = ?", id)
	})
}

func (r *Account) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("username = ?", username)
	})
}

func (r *Account) Create(ctx context.Context, account *model.Account) error {
	_, err := r.db.NewInsert().
		Model(account).
		Returning("account_id, created_at").
		Exec(ctx)
	return err
}
