package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

func TestCanonicalTypeAndStatus(t *testing.T) {
	t.Parallel()

	t.Run("mixed casing normalizes to canonical", func(t *testing.T) {
		typ, status, err := canonicalTypeAndStatus("Residential", "for sale")
		require.NoError(t, err)
		assert.Equal(t, constant.PropertyTypeResidential, typ)
		assert.Equal(t, constant.PropertyStatusForSale, status)
	})

	t.Run("the all sentinel is not a writable value", func(t *testing.T) {
		_, _, err := canonicalTypeAndStatus("all", constant.PropertyStatusForSale)
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 400, e.StatusCode)
	})

	t.Run("unknown enum values are rejected", func(t *testing.T) {
		_, _, err := canonicalTypeAndStatus("residential", "archived")
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 400, e.StatusCode)
	})
}
