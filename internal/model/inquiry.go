package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Inquiry is a customer-submitted message, optionally tied to a listing.
// PropertyID is an informational link only: deleting the listing does not
// cascade.
type Inquiry struct {
	bun.BaseModel `bun:"inquiries"`

	InquiryID  int       `bun:",pk,autoincrement" json:"id"`
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	PropertyID null.Int  `json:"propertyId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
