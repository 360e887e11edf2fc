package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/server/svr"
	"milimani.co.ke/backend/internal/service"
	"milimani.co.ke/backend/internal/util/rekuest"
)

type Property struct {
	fx.In

	PropertyService *service.Property
}

func RegisterProperty(public *svr.Public, c Property) {
	// static segments must be registered ahead of the :id matcher
	public.Get("/properties/featured", c.Featured)
	public.Get("/properties/filter-options", c.FilterOptions)
	public.Get("/properties", c.List)
	public.Get("/properties/:id", c.GetByID)
}

func (c *Property) List(ctx *fiber.Ctx) error {
	var req types.PropertyListRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	filter, err := req.Filter()
	if err != nil {
		return err
	}

	res, err := c.PropertyService.List(ctx.UserContext(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *Property) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid property id")
	}

	property, err := c.PropertyService.GetByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(property)
}

func (c *Property) Featured(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", constant.DefaultFeaturedLimit)

	properties, err := c.PropertyService.Featured(ctx.UserContext(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(properties)
}

func (c *Property) FilterOptions(ctx *fiber.Ctx) error {
	options, err := c.PropertyService.FilterOptions(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(options)
}
