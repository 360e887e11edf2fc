package repo

import (
	"context"

	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/repo/selector"
)

type Director struct {
	db  *bun.DB
	sel selector.S[model.Director]
}

func NewDirector(db *bun.DB) *Director {
	return &Director{db: db, sel: selector.New[model.Director](db)}
}

func (r *Director) GetDirectors(ctx context.Context) ([]*model.Director, error) {
	directors, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("sort_order ASC").Order("director_id ASC")
	})
	if err != nil {
		return nil, err
	}
	if directors == nil {
		directors = []*model.Director{}
	}
	return directors, nil
}

func (r *Director) Create(ctx context.Context, director *model.Director) error {
	_, err := r.db.NewInsert().
		Model(director).
		Returning("director_id").
		Exec(ctx)
	return err
}

func (r *Director) Count(ctx context.Context) (int, error) {
	return r.sel.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q
	})
}
