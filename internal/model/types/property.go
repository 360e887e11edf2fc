package types

import (
	"strconv"
	"strings"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/pkg/apperr"
)

// PropertyFilter is the normalized, validated form of the listing filter
// query-parameter bag. A zero field means "no constraint". Only values that
// survived canonicalization ever reach the repository layer.
type PropertyFilter struct {
	Search   string
	Location string
	Type     string
	Status   string

	// PriceMin/PriceMax form an inclusive range; they are only meaningful
	// when HasPriceRange is set.
	HasPriceRange bool
	PriceMin      int64
	PriceMax      int64

	Page     int
	PageSize int
}

// PropertyListRequest is the raw public listing query. Non-numeric page or
// pageSize fail fiber's QueryParser and surface as a 400 before any of this
// is evaluated.
type PropertyListRequest struct {
	Page         int    `query:"page"`
	PageSize     int    `query:"pageSize"`
	Search       string `query:"search"`
	Location     string `query:"location"`
	PropertyType string `query:"propertyType"`
	PriceRange   string `query:"priceRange"`
}

// AdminPropertyListRequest is the admin listing query. Unlike the public
// listing it accepts any status, or "all".
type AdminPropertyListRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Search   string `query:"search"`
	Status   string `query:"status"`
	Type     string `query:"type"`
}

func (r *PropertyListRequest) Filter() (*PropertyFilter, error) {
	f := &PropertyFilter{
		Search:   strings.TrimSpace(r.Search),
		Location: strings.TrimSpace(r.Location),
	}
	normalizePaging(f, r.Page, r.PageSize)

	typ, err := CanonicalPropertyType(r.PropertyType)
	if err != nil {
		return nil, err
	}
	f.Type = typ

	if err := parsePriceRange(f, r.PriceRange); err != nil {
		return nil, err
	}

	return f, nil
}

func (r *AdminPropertyListRequest) Filter() (*PropertyFilter, error) {
	f := &PropertyFilter{
		Search: strings.TrimSpace(r.Search),
	}
	normalizePaging(f, r.Page, r.PageSize)

	typ, err := CanonicalPropertyType(r.Type)
	if err != nil {
		return nil, err
	}
	f.Type = typ

	status, err := CanonicalPropertyStatus(r.Status)
	if err != nil {
		return nil, err
	}
	f.Status = status

	return f, nil
}

// CanonicalPropertyType maps a boundary value onto the closed type enum,
// case-insensitively. Empty and "all" mean no filter; anything else outside
// the enum is rejected rather than silently matching nothing.
func CanonicalPropertyType(v string) (string, error) {
	return canonicalize(constant.PropertyTypes, v, "propertyType")
}

// CanonicalPropertyStatus maps a boundary value onto the closed status enum,
// normalizing the mixed casings found in legacy content ("for sale" vs
// "For Sale").
func CanonicalPropertyStatus(v string) (string, error) {
	return canonicalize(constant.PropertyStatuses, v, "status")
}

func canonicalize(enum []string, v, field string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, constant.FilterAll) {
		return "", nil
	}
	for _, c := range enum {
		if strings.EqualFold(c, v) {
			return c, nil
		}
	}
	return "", apperr.ErrInvalidReq.Msg("unknown %s: %s", field, v)
}

func normalizePaging(f *PropertyFilter, page, pageSize int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = constant.DefaultPageSize
	}
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}
	f.Page = page
	f.PageSize = pageSize
}

// parsePriceRange parses the "min-max" form into an inclusive range.
// Malformed segments are rejected with a 400 instead of being passed through
// to the store.
func parsePriceRange(f *PropertyFilter, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, constant.FilterAll) {
		return nil
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return apperr.ErrInvalidReq.Msg("malformed priceRange: expected \"min-max\", got %q", raw)
	}

	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return apperr.ErrInvalidReq.Msg("malformed priceRange: %q is not a number", parts[0])
	}
	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return apperr.ErrInvalidReq.Msg("malformed priceRange: %q is not a number", parts[1])
	}
	if min < 0 || max < min {
		return apperr.ErrInvalidReq.Msg("malformed priceRange: bounds out of order in %q", raw)
	}

	f.HasPriceRange = true
	f.PriceMin = min
	f.PriceMax = max
	return nil
}

// CreatePropertyRequest is the admin create-listing body.
type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,lte=200"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price" validate:"gte=0"`
	Location    string   `json:"location" validate:"required,lte=120"`
	Type        string   `json:"type" validate:"required"`
	Status      string   `json:"status" validate:"required"`
	Size        int64    `json:"size" validate:"gte=0"`
	Bedrooms    *int64   `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int64   `json:"bathrooms" validate:"omitempty,gte=0"`
	Offices     *int64   `json:"offices" validate:"omitempty,gte=0"`
	Parking     *int64   `json:"parking" validate:"omitempty,gte=0"`
	Features    []string `json:"features" validate:"dive,lte=200"`
	Images      []string `json:"images" validate:"dive,lte=500"`
	Featured    bool     `json:"featured"`
}

// UpdatePropertyRequest is the admin edit-listing body. Every field is
// optional; absent fields leave the stored value untouched.
type UpdatePropertyRequest struct {
	Title       *string   `json:"title" validate:"omitempty,lte=200"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price" validate:"omitempty,gte=0"`
	Location    *string   `json:"location" validate:"omitempty,lte=120"`
	Type        *string   `json:"type"`
	Status      *string   `json:"status"`
	Size        *int64    `json:"size" validate:"omitempty,gte=0"`
	Bedrooms    *int64    `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int64    `json:"bathrooms" validate:"omitempty,gte=0"`
	Offices     *int64    `json:"offices" validate:"omitempty,gte=0"`
	Parking     *int64    `json:"parking" validate:"omitempty,gte=0"`
	Features    *[]string `json:"features"`
	Images      *[]string `json:"images"`
	Featured    *bool     `json:"featured"`
}
