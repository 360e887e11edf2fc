package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Session backs fiber's session middleware through the bun-based
// fiber.Storage adapter in pkg/sessionstore, keeping sessions in the same
// relational store as the rest of the data.
type Session struct {
	bun.BaseModel `bun:"sessions"`

	SID       string    `bun:",pk"`
	Data      []byte    `bun:"type:bytea"`
	ExpiresAt time.Time `bun:",nullzero"`
}
