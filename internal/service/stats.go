package service

import (
	"context"
	"time"

	"milimani.co.ke/backend/internal/constant"
	modelcache "milimani.co.ke/backend/internal/model/cache"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/repo"
)

type SiteStats struct {
	PropertyRepo *repo.Property
	InquiryRepo  *repo.Inquiry
}

func NewSiteStats(propertyRepo *repo.Property, inquiryRepo *repo.Inquiry) *SiteStats {
	return &SiteStats{
		PropertyRepo: propertyRepo,
		InquiryRepo:  inquiryRepo,
	}
}

// Cache: dashboardStats, 1min. Flushed eagerly on listing and inquiry
// mutations, so the TTL only covers seed scripts writing behind our back.
func (s *SiteStats) DashboardStats(ctx context.Context) (types.DashboardStats, error) {
	var stats types.DashboardStats
	err := modelcache.DashboardStats.MutexGetSet(&stats, func() (types.DashboardStats, error) {
		return s.calculateDashboardStats(ctx)
	}, time.Minute)
	return stats, err
}

func (s *SiteStats) calculateDashboardStats(ctx context.Context) (types.DashboardStats, error) {
	byStatus, err := s.PropertyRepo.CountByStatus(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	featured, err := s.PropertyRepo.CountFeatured(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}

	inquiries, err := s.InquiryRepo.Count(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}

	newInquiries, err := s.InquiryRepo.CountByStatus(ctx, constant.InquiryStatusNew)
	if err != nil {
		return types.DashboardStats{}, err
	}

	return types.DashboardStats{
		TotalProperties:    total,
		PropertiesByStatus: byStatus,
		FeaturedProperties: featured,
		TotalInquiries:     inquiries,
		NewInquiries:       newInquiries,
	}, nil
}
