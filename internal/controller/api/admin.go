package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/model/cache"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/pkg/apperr"
	"milimani.co.ke/backend/internal/pkg/flog"
	"milimani.co.ke/backend/internal/pkg/middlewares"
	"milimani.co.ke/backend/internal/server/svr"
	"milimani.co.ke/backend/internal/service"
	"milimani.co.ke/backend/internal/util/rekuest"
)

type Admin struct {
	fx.In

	PropertyService  *service.Property
	InquiryService   *service.Inquiry
	SiteStatsService *service.SiteStats
	Guard            svr.AuthGuard
}

func RegisterAdmin(public *svr.Public, admin *svr.Admin, c Admin) {
	admin.Get("/properties", c.ListProperties)
	admin.Post("/properties", c.CreateProperty)
	admin.Put("/properties/:id", c.UpdateProperty)
	admin.Delete("/properties/:id", c.DeleteProperty)

	admin.Get("/inquiries", c.ListInquiries)
	admin.Patch("/inquiries/:id", c.UpdateInquiryStatus)

	admin.Get("/dashboard-stats", c.DashboardStats)
	admin.Post("/purge", c.PurgeCache)

	// aliases for clients coded against the original frontend's paths; gated
	// per route since they live on the public group. /properties/admin must
	// be registered before the public /properties/:id matcher.
	guard := fiber.Handler(c.Guard)
	public.Get("/properties/admin", guard, c.ListProperties)
	public.Post("/properties", guard, c.CreateProperty)
	public.Put("/properties/:id", guard, c.UpdateProperty)
	public.Delete("/properties/:id", guard, c.DeleteProperty)
	public.Get("/inquiries", guard, c.ListInquiries)
	public.Patch("/inquiries/:id", guard, c.UpdateInquiryStatus)
}

// ListProperties is the back-office view: unlike the public catalog it spans
// every status and allows filtering on it.
func (c *Admin) ListProperties(ctx *fiber.Ctx) error {
	var req types.AdminPropertyListRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	filter, err := req.Filter()
	if err != nil {
		return err
	}

	res, err := c.PropertyService.AdminList(ctx.UserContext(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *Admin) CreateProperty(ctx *fiber.Ctx) error {
	var req types.CreatePropertyRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	property, err := c.PropertyService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("from", "admin").
		Str("username", middlewares.AccountFromCtx(ctx).Username).
		Int("propertyID", property.PropertyID).
		Msg("property created")

	return ctx.Status(fiber.StatusCreated).JSON(property)
}

func (c *Admin) UpdateProperty(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid property id")
	}

	var req types.UpdatePropertyRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	property, err := c.PropertyService.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(property)
}

func (c *Admin) DeleteProperty(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid property id")
	}

	if err := c.PropertyService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("from", "admin").
		Str("username", middlewares.AccountFromCtx(ctx).Username).
		Int("propertyID", id).
		Msg("property deleted")

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Admin) ListInquiries(ctx *fiber.Ctx) error {
	var req types.InquiryListRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	inquiries, err := c.InquiryService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(inquiries)
}

func (c *Admin) UpdateInquiryStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid inquiry id")
	}

	var req types.UpdateInquiryStatusRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	inquiry, err := c.InquiryService.UpdateStatus(ctx.UserContext(), id, req.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(inquiry)
}

// PurgeCache drops one in-process cache by name, for when seed scripts or
// manual database edits change content behind the services' backs.
func (c *Admin) PurgeCache(ctx *fiber.Ctx) error {
	var req types.FlushCacheRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := cache.Flush(req.Name); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Admin) DashboardStats(ctx *fiber.Ctx) error {
	stats, err := c.SiteStatsService.DashboardStats(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}
