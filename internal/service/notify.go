package service

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
)

// InquiryEvent is the wire payload published on inquiry creation. The mail
// worker renders it into a staff notification.
type InquiryEvent struct {
	ID        int       `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Property  *int      `json:"propertyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier fans out inquiry notifications. Implementations are strictly
// best-effort: a notification failure must never fail the request that
// produced it.
type Notifier interface {
	NotifyInquiryCreated(inquiry *model.Inquiry)
}

type natsNotifier struct {
	nc *nats.Conn
}

func NewNotifier(nc *nats.Conn) Notifier {
	return &natsNotifier{nc: nc}
}

func (n *natsNotifier) NotifyInquiryCreated(inquiry *model.Inquiry) {
	event := InquiryEvent{
		ID:        inquiry.InquiryID,
		Reference: inquiry.Reference,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Subject:   inquiry.Subject,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	}
	if inquiry.PropertyID.Valid {
		id := int(inquiry.PropertyID.Int64)
		event.Property = &id
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("evt.name", "inquiry.notify").Msg("failed to marshal inquiry event")
		return
	}

	// fire-and-forget: the publish happens off the request path and only
	// ever logs on failure
	go func() {
		err := retry.Do(func() error {
			return n.nc.Publish(constant.SubjectInquiryCreated, payload)
		}, retry.Attempts(3), retry.Delay(time.Second))
		if err != nil {
			log.Error().
				Err(err).
				Str("evt.name", "inquiry.notify").
				Str("reference", inquiry.Reference).
				Msg("failed to publish inquiry event")
		}
	}()
}
