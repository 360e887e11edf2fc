package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Director is static about-page content.
type Director struct {
	bun.BaseModel `bun:"directors"`

	DirectorID int         `bun:",pk,autoincrement" json:"id"`
	Name       string      `json:"name"`
	Position   string      `json:"position"`
	Bio        string      `json:"bio"`
	ImageURL   string      `json:"imageUrl"`
	LinkedIn   null.String `json:"linkedin"`
	Email      null.String `json:"email"`
	SortOrder  int         `json:"sortOrder"`
}
