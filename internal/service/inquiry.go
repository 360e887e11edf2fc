package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/guregu/null.v3"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	modelcache "milimani.co.ke/backend/internal/model/cache"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/repo"
)

type Inquiry struct {
	InquiryRepo *repo.Inquiry
	Notifier    Notifier
}

func NewInquiry(inquiryRepo *repo.Inquiry, notifier Notifier) *Inquiry {
	return &Inquiry{
		InquiryRepo: inquiryRepo,
		Notifier:    notifier,
	}
}

// Create persists a public submission. defaultSubject distinguishes the
// property inquiry form from the generic contact form; an explicit subject
// always wins. Notification is best-effort and cannot fail the request.
func (s *Inquiry) Create(ctx context.Context, req *types.InquiryRequest, defaultSubject string) (*model.Inquiry, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	inquiry := &model.Inquiry{
		Reference: strings.ToLower(ulid.Make().String()),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   subject,
		Message:   req.Message,
		Status:    constant.InquiryStatusNew,
	}
	if req.PropertyID != nil {
		inquiry.PropertyID = null.IntFrom(int64(*req.PropertyID))
	}

	if err := s.InquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	modelcache.FlushInquiries()
	s.Notifier.NotifyInquiryCreated(inquiry)

	return inquiry, nil
}

func (s *Inquiry) List(ctx context.Context, req *types.InquiryListRequest) ([]*model.Inquiry, error) {
	status, err := types.CanonicalInquiryStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return s.InquiryRepo.List(ctx, strings.TrimSpace(req.Search), status)
}

// UpdateStatus moves an inquiry through triage. The status must name a
// concrete enum value; "all" is a filter sentinel, not a state.
func (s *Inquiry) UpdateStatus(ctx context.Context, id int, rawStatus string) (*model.Inquiry, error) {
	status, err := types.CanonicalInquiryStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, apperr.ErrInvalidReq.Msg("status is required and must name a concrete inquiry status")
	}

	if err := s.InquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	modelcache.FlushInquiries()
	return s.InquiryRepo.GetByID(ctx, id)
}
