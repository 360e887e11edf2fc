package repo

import (
	"context"

	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/repo/selector"
)

type Inquiry struct {
	db  *bun.DB
	sel selector.S[model.Inquiry]
}

func NewInquiry(db *bun.DB) *Inquiry {
	return &Inquiry{db: db, sel: selector.New[model.Inquiry](db)}
}

func (r *Inquiry) Create(ctx context.Context, inquiry *model.Inquiry) error {
	_, err := r.db.NewInsert().
		Model(inquiry).
		Returning("inquiry_id, created_at").
		Exec(ctx)
	return err
}

// List returns inquiries for admin triage, newest first. Inquiries are never
// deleted, so no pagination shortcuts: search and status narrow the set.
func (r *Inquiry) List(ctx context.Context, search, status string) ([]*model.Inquiry, error) {
	inquiries, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if search != "" {
			pattern := "%" + search + "%"
			q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.
					Where("name LIKE ?", pattern).
					WhereOr("email LIKE ?", pattern).
					WhereOr("subject LIKE ?", pattern).
					WhereOr("message LIKE ?", pattern)
			})
		}
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q.Order("created_at DESC").Order("inquiry_id DESC")
	})
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}
	return inquiries, nil
}

func (r *Inquiry) GetByID(ctx context.Context, id int) (*model.Inquiry, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("inquiry_id = ?", id)
	})
}

func (r *Inquiry) UpdateStatus(ctx context.Context, id int, status string) error {
	res, err := r.db.NewUpdate().
		Model((*model.Inquiry)(nil)).
		Set("status = ?", status).
		Where("inquiry_id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Inquiry) Count(ctx context.Context) (int, error) {
	return r.sel.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q
	})
}

func (r *Inquiry) CountByStatus(ctx context.Context, status string) (int, error) {
	return r.sel.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", status)
	})
}
