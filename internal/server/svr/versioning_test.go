package svr_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/repo"
	"milimani.co.ke/backend/internal/server/httpserver"
	"milimani.co.ke/backend/internal/server/svr"
)

func TestEndpointGroupGating(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
	sessions := session.New(session.Config{
		KeyLookup: "cookie:" + constant.SessionCookieName,
	})

	// the resolver is only consulted once a session exists; anonymous
	// requests must be rejected before it is ever touched
	public, admin, guard := svr.CreateEndpointGroups(app, sessions, repo.NewAccount(nil))

	ok := func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) }
	public.Get("/ping", ok)
	admin.Get("/ping", ok)
	public.Post("/properties", fiber.Handler(guard), ok)

	t.Run("public routes answer without a session", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("admin group rejects anonymous requests with 401", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("guarded routes on the public group reject anonymous requests with 401", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/properties", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
