package cache

import (
	"sync"

	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	FilterOptions  *cache.Singular[types.FilterOptions]
	Directors      *cache.Singular[[]*model.Director]
	DashboardStats *cache.Singular[types.DashboardStats]

	once sync.Once

	// SingularFlusherMap registers every cache so listing mutations can
	// invalidate the lot without knowing individual keys.
	SingularFlusherMap map[string]Flusher
)

func Initialize() {
	once.Do(func() {
		initializeCaches()
	})
}

func initializeCaches() {
	FilterOptions = cache.NewSingular[types.FilterOptions]("filterOptions")
	Directors = cache.NewSingular[[]*model.Director]("directors")
	DashboardStats = cache.NewSingular[types.DashboardStats]("dashboardStats")

	SingularFlusherMap = map[string]Flusher{
		"filterOptions":  FilterOptions.Delete,
		"directors":      Directors.Delete,
		"dashboardStats": DashboardStats.Delete,
	}
}

// Flush invalidates a single cache by its registered name. Backs the admin
// purge endpoint; unknown names are a caller error.
func Flush(name string) error {
	flusher, ok := SingularFlusherMap[name]
	if !ok {
		return apperr.ErrInvalidReq.Msg("unknown cache: %s", name)
	}
	return flusher()
}

// FlushProperties invalidates every cache derived from listing rows. Called
// after each admin create/update/delete.
func FlushProperties() {
	FilterOptions.Delete()
	DashboardStats.Delete()
}

// FlushInquiries invalidates caches derived from inquiry rows.
func FlushInquiries() {
	DashboardStats.Delete()
}
