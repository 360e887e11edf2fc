package infra

import (
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/uptrace/bun"

	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/pkg/sessionstore"
)

// Sessions builds the session middleware store on top of the relational
// store, so admin logins share the database's durability and no extra
// stateful service is required.
func Sessions(conf *appconfig.Config, db *bun.DB) (*session.Store, *sessionstore.Bun) {
	storage := sessionstore.NewBun(db)

	store := session.New(session.Config{
		Storage:        storage,
		Expiration:     conf.SessionTTL,
		KeyLookup:      "cookie:" + constant.SessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !conf.DevMode,
	})

	return store, storage
}
