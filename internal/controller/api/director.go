package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/server/svr"
	"milimani.co.ke/backend/internal/service"
)

type Director struct {
	fx.In

	DirectorService *service.Director
}

func RegisterDirector(public *svr.Public, c Director) {
	public.Get("/directors", c.GetDirectors)
}

func (c *Director) GetDirectors(ctx *fiber.Ctx) error {
	directors, err := c.DirectorService.GetDirectors(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(directors)
}
