package repo

import (
	"context"

	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/repo/selector"
)

type Property struct {
	db  *bun.DB
	sel selector.S[model.Property]
}

func NewProperty(db *bun.DB) *Property {
	return &Property{db: db, sel: selector.New[model.Property](db)}
}

// ApplyFilter translates a normalized filter into a conjunction of
// predicates. Absence of all filters yields an unconstrained query.
func ApplyFilter(q *bun.SelectQuery, f *types.PropertyFilter) *bun.SelectQuery {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("title LIKE ?", pattern).
				WhereOr("description LIKE ?", pattern).
				WhereOr("location LIKE ?", pattern)
		})
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.HasPriceRange {
		q = q.Where("price BETWEEN ? AND ?", f.PriceMin, f.PriceMax)
	}
	return q
}

// List returns one page of listings matching f, newest first. The secondary
// order on property_id keeps pagination deterministic when several rows
// share a created_at.
func (r *Property) List(ctx context.Context, f *types.PropertyFilter, limit, offset int) ([]*model.Property, error) {
	properties, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return ApplyFilter(q, f).
			Order("created_at DESC").
			Order("property_id DESC").
			Limit(limit).
			Offset(offset)
	})
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []*model.Property{}
	}
	return properties, nil
}

func (r *Property) Count(ctx context.Context, f *types.PropertyFilter) (int, error) {
	return r.sel.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return ApplyFilter(q, f)
	})
}

func (r *Property) GetByID(ctx context.Context, id int) (*model.Property, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("property_id = ?", id)
	})
}

func (r *Property) Create(ctx context.Context, property *model.Property) error {
	_, err := r.db.NewInsert().
		Model(property).
		Returning("property_id, created_at").
		Exec(ctx)
	return err
}

// Update persists the full row. The caller is expected to have loaded the
// row first, so a vanished id still surfaces as not-found.
func (r *Property) Update(ctx context.Context, property *model.Property) error {
	res, err := r.db.NewUpdate().
		Model(property).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Property) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().
		Model((*model.Property)(nil)).
		Where("property_id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Property) Featured(ctx context.Context, limit int) ([]*model.Property, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("featured = TRUE").
			Where("status = ?", constant.PropertyStatusForSale).
			Order("created_at DESC").
			Order("property_id DESC").
			Limit(limit)
	})
}

func (r *Property) DistinctLocations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.NewSelect().
		Model((*model.Property)(nil)).
		ColumnExpr("DISTINCT location").
		Order("location ASC").
		Scan(ctx, &locations)
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *Property) DistinctTypes(ctx context.Context) ([]string, error) {
	var propertyTypes []string
	err := r.db.NewSelect().
		Model((*model.Property)(nil)).
		ColumnExpr("DISTINCT type").
		Order("type ASC").
		Scan(ctx, &propertyTypes)
	if err != nil {
		return nil, err
	}
	return propertyTypes, nil
}

// CountByStatus feeds the admin dashboard.
func (r *Property) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `bun:"status"`
		Count  int    `bun:"count"`
	}
	err := r.db.NewSelect().
		Model((*model.Property)(nil)).
		ColumnExpr("status").
		ColumnExpr("COUNT(*) AS count").
		GroupExpr("status").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *Property) CountFeatured(ctx context.Context) (int, error) {
	return r.sel.Count(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("featured = TRUE")
	})
}
