package svr

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"milimani.co.ke/backend/internal/pkg/middlewares"
	"milimani.co.ke/backend/internal/repo"
)

// Public is the ungated catalog surface.
type Public struct {
	fiber.Router
}

// Admin is the session-gated back-office surface. Every route registered on
// it passes the auth middleware before any handler runs.
type Admin struct {
	fiber.Router
}

// AuthGuard is the session auth middleware, exposed for routes that live on
// the public group but still require an admin session (legacy admin paths,
// /auth/me).
type AuthGuard fiber.Handler

// InquiryLimiter is the rate-limit handler applied to public submission
// endpoints.
type InquiryLimiter fiber.Handler

func CreateEndpointGroups(app *fiber.App, sessions *session.Store, accounts *repo.Account) (*Public, *Admin, AuthGuard) {
	guard := middlewares.Auth(sessions, accounts)

	public := app.Group("/api")
	admin := app.Group("/api/admin", guard)

	return &Public{Router: public}, &Admin{Router: admin}, AuthGuard(guard)
}
