package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

func TestPropertyListRequestFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty bag yields unconstrained filter with default paging", func(t *testing.T) {
		f, err := (&PropertyListRequest{}).Filter()
		require.NoError(t, err)
		assert.Empty(t, f.Search)
		assert.Empty(t, f.Location)
		assert.Empty(t, f.Type)
		assert.False(t, f.HasPriceRange)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, constant.DefaultPageSize, f.PageSize)
	})

	t.Run("price range bounds are inclusive and parsed", func(t *testing.T) {
		f, err := (&PropertyListRequest{PriceRange: "250000-500000"}).Filter()
		require.NoError(t, err)
		assert.True(t, f.HasPriceRange)
		assert.EqualValues(t, 250000, f.PriceMin)
		assert.EqualValues(t, 500000, f.PriceMax)
	})

	t.Run("malformed price range is rejected", func(t *testing.T) {
		for _, raw := range []string{"cheap", "100000", "a-b", "100-abc", "500-100", "-100-200"} {
			_, err := (&PropertyListRequest{PriceRange: raw}).Filter()
			var e *apperr.Error
			require.ErrorAs(t, err, &e, "priceRange=%q", raw)
			assert.Equal(t, 400, e.StatusCode)
		}
	})

	t.Run("all means no type filter", func(t *testing.T) {
		f, err := (&PropertyListRequest{PropertyType: "all"}).Filter()
		require.NoError(t, err)
		assert.Empty(t, f.Type)
	})

	t.Run("type is canonicalized case-insensitively", func(t *testing.T) {
		f, err := (&PropertyListRequest{PropertyType: "Residential"}).Filter()
		require.NoError(t, err)
		assert.Equal(t, constant.PropertyTypeResidential, f.Type)
	})

	t.Run("unknown type is rejected, not silently matched to nothing", func(t *testing.T) {
		_, err := (&PropertyListRequest{PropertyType: "castle"}).Filter()
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 400, e.StatusCode)
	})

	t.Run("non-positive paging is normalized, oversized pageSize clamped", func(t *testing.T) {
		f, err := (&PropertyListRequest{Page: -2, PageSize: 100000}).Filter()
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, constant.MaxPageSize, f.PageSize)
	})
}

func TestAdminPropertyListRequestFilter(t *testing.T) {
	t.Parallel()

	t.Run("legacy lowercase status is normalized to canonical casing", func(t *testing.T) {
		f, err := (&AdminPropertyListRequest{Status: "for sale"}).Filter()
		require.NoError(t, err)
		assert.Equal(t, constant.PropertyStatusForSale, f.Status)
	})

	t.Run("all and empty mean any status", func(t *testing.T) {
		for _, raw := range []string{"", "all", "All"} {
			f, err := (&AdminPropertyListRequest{Status: raw}).Filter()
			require.NoError(t, err)
			assert.Empty(t, f.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := (&AdminPropertyListRequest{Status: "archived"}).Filter()
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 400, e.StatusCode)
	})
}
