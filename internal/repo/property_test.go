package repo

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/model/types"
)

// filterSQL renders the listing query ApplyFilter composes, without touching
// a database: pgdriver only dials on execution, and String() renders locally.
func filterSQL(f *types.PropertyFilter) string {
	db := bun.NewDB(
		sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN("postgres://127.0.0.1:5432/renderonly?sslmode=disable"))),
		pgdialect.New(),
	)
	return ApplyFilter(db.NewSelect().Model((*model.Property)(nil)), f).String()
}

func TestApplyFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty filter constrains nothing", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{})
		assert.NotContains(t, q, "WHERE")
	})

	t.Run("type and location are ANDed into an intersection", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{
			Type:     "residential",
			Location: "Kilimani",
		})
		assert.Contains(t, q, "location LIKE '%Kilimani%'")
		assert.Contains(t, q, "type = 'residential'")
		assert.Contains(t, q, "AND")
		assert.NotContains(t, q, "OR")
	})

	t.Run("price range is an inclusive BETWEEN", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{
			HasPriceRange: true,
			PriceMin:      250000,
			PriceMax:      500000,
		})
		assert.Contains(t, q, "price BETWEEN 250000 AND 500000")
	})

	t.Run("search is an OR group across title, description and location", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{Search: "villa"})
		assert.Contains(t, q, "title LIKE '%villa%'")
		assert.Contains(t, q, "description LIKE '%villa%'")
		assert.Contains(t, q, "location LIKE '%villa%'")
		assert.Contains(t, q, "OR")
	})

	t.Run("search group does not leak into other predicates", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{
			Search: "villa",
			Status: "For Sale",
		})
		// status must sit outside the OR group, so a search hit cannot
		// bypass the status constraint
		assert.Contains(t, q, "(title LIKE '%villa%') OR (description LIKE '%villa%') OR (location LIKE '%villa%')")
		assert.Contains(t, q, "status = 'For Sale'")
	})

	t.Run("status predicate uses the canonical casing verbatim", func(t *testing.T) {
		q := filterSQL(&types.PropertyFilter{Status: "For Sale"})
		assert.Contains(t, q, "status = 'For Sale'")
		assert.NotContains(t, q, "for sale")
	})
}
