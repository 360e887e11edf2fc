package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/flog"
	"milimani.co.ke/backend/internal/pkg/middlewares"
	"milimani.co.ke/backend/internal/server/svr"
	"milimani.co.ke/backend/internal/service"
	"milimani.co.ke/backend/internal/util/rekuest"
)

type Auth struct {
	fx.In

	Sessions       *session.Store
	AccountService *service.Account
	Guard          svr.AuthGuard
}

func RegisterAuth(public *svr.Public, c Auth) {
	public.Post("/auth/login", c.Login)
	public.Post("/auth/logout", c.Logout)
	public.Get("/auth/me", fiber.Handler(c.Guard), c.Me)
}

func (c *Auth) Login(ctx *fiber.Ctx) error {
	var req types.LoginRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	account, err := c.AccountService.Login(ctx.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	sess, err := c.Sessions.Get(ctx)
	if err != nil {
		return apperr.ErrInternalError.Msg("failed to open session")
	}
	// rotate the session id on privilege change
	if err := sess.Regenerate(); err != nil {
		return apperr.ErrInternalError.Msg("failed to regenerate session")
	}
	sess.Set(constant.SessionKeyAccountID, account.AccountID)
	if err := sess.Save(); err != nil {
		return apperr.ErrInternalError.Msg("failed to persist session")
	}

	flog.InfoFrom(ctx).
		Str("from", "auth").
		Str("username", account.Username).
		Msg("admin logged in")

	return ctx.JSON(account)
}

func (c *Auth) Logout(ctx *fiber.Ctx) error {
	sess, err := c.Sessions.Get(ctx)
	if err == nil {
		// destroying a fresh, never-saved session is a no-op
		if err := sess.Destroy(); err != nil {
			flog.WarnFrom(ctx).Str("from", "auth").Err(err).Msg("failed to destroy session")
		}
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Auth) Me(ctx *fiber.Ctx) error {
	return ctx.JSON(middlewares.AccountFromCtx(ctx))
}
