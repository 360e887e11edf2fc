package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Property is a listing surfaced in the public catalog and managed through
// the admin back office.
type Property struct {
	bun.BaseModel `bun:"properties"`

	PropertyID  int       `bun:",pk,autoincrement" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Size        int64     `json:"size"`
	Bedrooms    null.Int  `json:"bedrooms"`
	Bathrooms   null.Int  `json:"bathrooms"`
	Offices     null.Int  `json:"offices"`
	Parking     null.Int  `json:"parking"`
	Features    []string  `bun:",array" json:"features"`
	Images      []string  `bun:",array" json:"images"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
