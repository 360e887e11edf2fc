package constant

const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
	PropertyTypeLand        = "land"
)

// PropertyTypes is the closed set of listing types. The slice must not be
// modified.
var PropertyTypes = []string{
	PropertyTypeResidential,
	PropertyTypeCommercial,
	PropertyTypeLand,
}

// Listing statuses are stored and served in Title Case. The original site
// content mixed casings ("For Sale" vs "for sale"); every boundary input is
// normalized case-insensitively against these canonical values.
const (
	PropertyStatusForSale  = "For Sale"
	PropertyStatusForRent  = "For Rent"
	PropertyStatusForLease = "For Lease"
	PropertyStatusSold     = "Sold"
	PropertyStatusPending  = "Pending"
)

var PropertyStatuses = []string{
	PropertyStatusForSale,
	PropertyStatusForRent,
	PropertyStatusForLease,
	PropertyStatusSold,
	PropertyStatusPending,
}

// FilterAll is the sentinel filter value meaning "do not filter".
const FilterAll = "all"
