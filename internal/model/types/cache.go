package types

// FlushCacheRequest names a single in-process cache to invalidate.
type FlushCacheRequest struct {
	Name string `json:"name" validate:"required,lte=64"`
}
