package middlewares

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/flog"
)

// AccountResolver resolves a session's account id back to an account row.
// Satisfied by *repo.Account.
type AccountResolver interface {
	GetAccountByID(ctx context.Context, id int) (*model.Account, error)
}

// Auth guards admin and mutating routes: requests without a valid session
// are rejected with a 401 before any data access happens. On success the
// resolved account is stored in fiber locals for handlers that need the
// authenticated identity.
func Auth(sessions *session.Store, accounts AccountResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, err := sessions.Get(ctx)
		if err != nil {
			return apperr.ErrUnauthorized.Msg("session unavailable")
		}

		id, ok := sess.Get(constant.SessionKeyAccountID).(int)
		if !ok {
			return apperr.ErrUnauthorized
		}

		account, err := accounts.GetAccountByID(ctx.UserContext(), id)
		if err != nil {
			flog.WarnFrom(ctx).Int("accountID", id).Msg("session refers to a missing account")
			return apperr.ErrUnauthorized
		}

		ctx.Locals(constant.LocalsKeyAccount, account)
		return ctx.Next()
	}
}

// AccountFromCtx returns the account injected by Auth, or nil on ungated
// routes.
func AccountFromCtx(ctx *fiber.Ctx) *model.Account {
	account, _ := ctx.Locals(constant.LocalsKeyAccount).(*model.Account)
	return account
}
