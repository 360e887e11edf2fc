package service

import (
	"context"
	"time"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	modelcache "milimani.co.ke/backend/internal/model/cache"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/pagination"
	"milimani.co.ke/backend/internal/repo"
)

type Property struct {
	PropertyRepo *repo.Property
}

func NewProperty(propertyRepo *repo.Property) *Property {
	return &Property{
		PropertyRepo: propertyRepo,
	}
}

// List serves the public catalog. The public surface only ever shows
// listings that are up for sale; everything else stays admin-only.
func (s *Property) List(ctx context.Context, f *types.PropertyFilter) (*types.PropertyListResponse, error) {
	f.Status = constant.PropertyStatusForSale
	return s.list(ctx, f)
}

// AdminList serves the back office, where any status (or none) is fair game.
func (s *Property) AdminList(ctx context.Context, f *types.PropertyFilter) (*types.PropertyListResponse, error) {
	return s.list(ctx, f)
}

func (s *Property) list(ctx context.Context, f *types.PropertyFilter) (*types.PropertyListResponse, error) {
	total, err := s.PropertyRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	page := pagination.Resolve(total, f.Page, f.PageSize)

	properties, err := s.PropertyRepo.List(ctx, f, page.Size, page.Offset)
	if err != nil {
		return nil, err
	}

	return &types.PropertyListResponse{
		Properties: properties,
		Total:      page.Total,
		Pages:      page.Pages,
	}, nil
}

func (s *Property) GetByID(ctx context.Context, id int) (*model.Property, error) {
	return s.PropertyRepo.GetByID(ctx, id)
}

func (s *Property) Featured(ctx context.Context, limit int) ([]*model.Property, error) {
	if limit < 1 {
		limit = constant.DefaultFeaturedLimit
	}
	if limit > constant.MaxFeaturedLimit {
		limit = constant.MaxFeaturedLimit
	}
	properties, err := s.PropertyRepo.Featured(ctx, limit)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []*model.Property{}
	}
	return properties, nil
}

// FilterOptions feeds the public filter dropdowns from distinct stored
// values, cached briefly since listings change rarely.
func (s *Property) FilterOptions(ctx context.Context) (types.FilterOptions, error) {
	var options types.FilterOptions
	err := modelcache.FilterOptions.MutexGetSet(&options, func() (types.FilterOptions, error) {
		locations, err := s.PropertyRepo.DistinctLocations(ctx)
		if err != nil {
			return types.FilterOptions{}, err
		}
		propertyTypes, err := s.PropertyRepo.DistinctTypes(ctx)
		if err != nil {
			return types.FilterOptions{}, err
		}
		return types.FilterOptions{
			Locations:     locations,
			PropertyTypes: propertyTypes,
		}, nil
	}, time.Minute*5)
	return options, err
}

func (s *Property) Create(ctx context.Context, req *types.CreatePropertyRequest) (*model.Property, error) {
	typ, status, err := canonicalTypeAndStatus(req.Type, req.Status)
	if err != nil {
		return nil, err
	}

	property := &model.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Type:        typ,
		Status:      status,
		Size:        req.Size,
		Bedrooms:    nullFromPtr(req.Bedrooms),
		Bathrooms:   nullFromPtr(req.Bathrooms),
		Offices:     nullFromPtr(req.Offices),
		Parking:     nullFromPtr(req.Parking),
		Features:    emptyIfNil(req.Features),
		Images:      emptyIfNil(req.Images),
		Featured:    req.Featured,
	}

	if err := s.PropertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	modelcache.FlushProperties()
	return property, nil
}

// Update applies a partial edit on top of the stored row. Loading first
// keeps the not-found distinction cheap and lets absent fields keep their
// stored values.
func (s *Property) Update(ctx context.Context, id int, req *types.UpdatePropertyRequest) (*model.Property, error) {
	property, err := s.PropertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil || req.Status != nil {
		typ := property.Type
		status := property.Status
		if req.Type != nil {
			typ = *req.Type
		}
		if req.Status != nil {
			status = *req.Status
		}
		typ, status, err = canonicalTypeAndStatus(typ, status)
		if err != nil {
			return nil, err
		}
		property.Type = typ
		property.Status = status
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Size != nil {
		property.Size = *req.Size
	}
	if req.Bedrooms != nil {
		property.Bedrooms = nullFromPtr(req.Bedrooms)
	}
	if req.Bathrooms != nil {
		property.Bathrooms = nullFromPtr(req.Bathrooms)
	}
	if req.Offices != nil {
		property.Offices = nullFromPtr(req.Offices)
	}
	if req.Parking != nil {
		property.Parking = nullFromPtr(req.Parking)
	}
	if req.Features != nil {
		property.Features = emptyIfNil(*req.Features)
	}
	if req.Images != nil {
		property.Images = emptyIfNil(*req.Images)
	}
	if req.Featured != nil {
		property.Featured = *req.Featured
	}

	if err := s.PropertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	modelcache.FlushProperties()
	return property, nil
}

func (s *Property) Delete(ctx context.Context, id int) error {
	if err := s.PropertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	modelcache.FlushProperties()
	return nil
}
