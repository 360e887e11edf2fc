package types

import "milimani.co.ke/backend/internal/constant"

// CanonicalInquiryStatus maps a boundary value onto the closed inquiry
// status enum. Empty and "all" mean no filter.
func CanonicalInquiryStatus(v string) (string, error) {
	return canonicalize(constant.InquiryStatuses, v, "status")
}

// InquiryRequest is the public contact / property-inquiry body. The same
// shape serves both POST /api/inquiries and POST /api/contact; only the
// default subject differs.
type InquiryRequest struct {
	Name       string `json:"name" validate:"required,lte=120"`
	Email      string `json:"email" validate:"required,email,lte=254"`
	Phone      string `json:"phone" validate:"required,min=7,lte=20"`
	Subject    string `json:"subject" validate:"lte=200"`
	Message    string `json:"message" validate:"required,lte=5000"`
	PropertyID *int   `json:"propertyId" validate:"omitempty,gt=0"`
}

// InquiryListRequest is the admin inquiry triage query.
type InquiryListRequest struct {
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,caseinsensitiveoneof=all new in-progress resolved cancelled"`
}

// UpdateInquiryStatusRequest mutates a single inquiry's triage status. The
// value must be one of the closed enum; "all" only makes sense as a list
// filter and is rejected by the service.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,caseinsensitiveoneof=new in-progress resolved cancelled"`
}
