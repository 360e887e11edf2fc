package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/model/types"
	pkgcache "milimani.co.ke/backend/internal/pkg/cache"
)

func TestFlushByName(t *testing.T) {
	Initialize()

	require.NoError(t, FilterOptions.Set(types.FilterOptions{
		Locations: []string{"Kilimani, Nairobi"},
	}, time.Minute))

	var options types.FilterOptions
	require.NoError(t, FilterOptions.Get(&options))

	require.NoError(t, Flush("filterOptions"))
	assert.ErrorIs(t, FilterOptions.Get(&options), pkgcache.ErrNotFound)
}

func TestFlushUnknownName(t *testing.T) {
	Initialize()

	assert.Error(t, Flush("noSuchCache"))
}
