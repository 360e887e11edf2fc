package middlewares_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/middlewares"
	"milimani.co.ke/backend/internal/server/httpserver"
)

type fakeResolver struct {
	accounts map[int]*model.Account
}

func (f *fakeResolver) GetAccountByID(_ context.Context, id int) (*model.Account, error) {
	if account, ok := f.accounts[id]; ok {
		return account, nil
	}
	return nil, apperr.ErrNotFound
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	sessions := session.New(session.Config{
		KeyLookup: "cookie:" + constant.SessionCookieName,
	})
	resolver := &fakeResolver{accounts: map[int]*model.Account{
		1: {AccountID: 1, Username: "admin"},
	}}

	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})

	app.Post("/login/:id", func(ctx *fiber.Ctx) error {
		id, err := ctx.ParamsInt("id")
		require.NoError(t, err)

		sess, err := sessions.Get(ctx)
		require.NoError(t, err)
		sess.Set(constant.SessionKeyAccountID, id)
		require.NoError(t, sess.Save())
		return ctx.SendStatus(fiber.StatusOK)
	})

	admin := app.Group("/admin", middlewares.Auth(sessions, resolver))
	admin.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.JSON(middlewares.AccountFromCtx(ctx))
	})

	return app
}

func TestAuthRejectsAnonymous(t *testing.T) {
	app := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthAcceptsValidSession(t *testing.T) {
	app := newAuthTestApp(t)

	login, err := app.Test(httptest.NewRequest("POST", "/login/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, login.StatusCode)
	cookies := login.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/admin/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthRejectsSessionForMissingAccount(t *testing.T) {
	app := newAuthTestApp(t)

	login, err := app.Test(httptest.NewRequest("POST", "/login/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, login.StatusCode)

	req := httptest.NewRequest("GET", "/admin/whoami", nil)
	for _, c := range login.Cookies() {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
