package types

import "milimani.co.ke/backend/internal/model"

// PropertyListResponse is the shape both listing endpoints answer with.
type PropertyListResponse struct {
	Properties []*model.Property `json:"properties"`
	Total      int               `json:"total"`
	Pages      int               `json:"pages"`
}

// FilterOptions populates the public filter dropdowns.
type FilterOptions struct {
	Locations     []string `json:"locations"`
	PropertyTypes []string `json:"propertyTypes"`
}

// DashboardStats summarizes the back office landing page.
type DashboardStats struct {
	TotalProperties    int            `json:"totalProperties"`
	PropertiesByStatus map[string]int `json:"propertiesByStatus"`
	FeaturedProperties int            `json:"featuredProperties"`
	TotalInquiries     int            `json:"totalInquiries"`
	NewInquiries       int            `json:"newInquiries"`
}
