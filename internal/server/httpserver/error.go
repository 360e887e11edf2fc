package httpserver

import (
	"database/sql/driver"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/flog"
)

// ErrorHandler is the last line of defense: anything a handler returns that
// is not already an *apperr.Error gets normalized here so clients always see
// the same error envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	e := &apperr.Error{}
	if errors.As(err, &e) {
		return respondWithError(ctx, e)
	}

	fe := &fiber.Error{}
	if errors.As(err, &fe) {
		return respondWithError(ctx, &apperr.Error{
			StatusCode: fe.Code,
			ErrorCode:  "UNKNOWN_ERROR",
			Message:    fe.Message,
		})
	}

	// Connection-level failures against the store are transient. Surface
	// them as 503 rather than 500 so upstream load balancers can retry.
	var ne net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &ne) {
		flog.WarnFrom(ctx).
			Str("from", "http.error").
			Err(err).
			Msg("transient infrastructure error")
		return respondWithError(ctx, apperr.ErrUnavailable)
	}

	flog.ErrorFrom(ctx).
		Str("from", "http.error").
		Err(err).
		Msg("internal server error")

	return respondWithError(ctx, apperr.ErrInternalError)
}

func respondWithError(ctx *fiber.Ctx, e *apperr.Error) error {
	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}
	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}
	return ctx.Status(e.StatusCode).JSON(body)
}
