package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is an admin back-office account. PasswordHash is a bcrypt hash and
// is never serialized.
type Account struct {
	bun.BaseModel `bun:"accounts"`

	AccountID    int       `bun:",pk,autoincrement" json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
