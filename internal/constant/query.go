package constant

const (
	DefaultPageSize = 12
	MaxPageSize     = 100

	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 24
)
