package cache

import "github.com/pkg/errors"

// ErrNotFound is returned when the requested key is absent from the cache.
var ErrNotFound = errors.New("cache: not found")
