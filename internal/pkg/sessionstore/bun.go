// Package sessionstore persists fiber sessions in the relational store, so
// an admin login survives process restarts and no extra stateful service is
// needed for auth.
package sessionstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/model"
)

type Bun struct {
	db *bun.DB
}

var _ fiber.Storage = (*Bun)(nil)

func NewBun(db *bun.DB) *Bun {
	return &Bun{db: db}
}

// Get implements fiber.Storage. Expired sessions read as absent; the reaper
// in GC removes them eventually.
func (s *Bun) Get(key string) ([]byte, error) {
	var sess model.Session
	err := s.db.NewSelect().
		Model(&sess).
		Where("sid = ?", key).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}

	return sess.Data, nil
}

// Set implements fiber.Storage
func (s *Bun) Set(key string, val []byte, exp time.Duration) error {
	sess := &model.Session{
		SID:  key,
		Data: val,
	}
	if exp > 0 {
		sess.ExpiresAt = time.Now().Add(exp)
	}

	_, err := s.db.NewInsert().
		Model(sess).
		On("CONFLICT (sid) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("expires_at = EXCLUDED.expires_at").
		Exec(context.Background())
	return err
}

// Delete implements fiber.Storage
func (s *Bun) Delete(key string) error {
	_, err := s.db.NewDelete().
		Model((*model.Session)(nil)).
		Where("sid = ?", key).
		Exec(context.Background())
	return err
}

// Reset implements fiber.Storage
func (s *Bun) Reset() error {
	_, err := s.db.NewDelete().
		Model((*model.Session)(nil)).
		Where("1 = 1").
		Exec(context.Background())
	return err
}

// Close implements fiber.Storage. The db lifecycle belongs to the fx graph,
// not the session store.
func (s *Bun) Close() error {
	return nil
}

// GC deletes expired sessions. Called periodically from the server lifecycle
// hook.
func (s *Bun) GC(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*model.Session)(nil)).
		Where("expires_at IS NOT NULL AND expires_at < ?", time.Now()).
		Exec(ctx)
	return err
}
