package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"milimani.co.ke/backend/internal/constant"
	"milimani.co.ke/backend/internal/model/types"
	"milimani.co.ke/backend/internal/server/svr"
	"milimani.co.ke/backend/internal/service"
	"milimani.co.ke/backend/internal/util/rekuest"
)

type Inquiry struct {
	fx.In

	InquiryService *service.Inquiry
	Limiter        svr.InquiryLimiter
}

func RegisterInquiry(public *svr.Public, c Inquiry) {
	public.Post("/inquiries", fiber.Handler(c.Limiter), c.CreateInquiry)
	public.Post("/contact", fiber.Handler(c.Limiter), c.CreateContact)
}

func (c *Inquiry) CreateInquiry(ctx *fiber.Ctx) error {
	return c.create(ctx, constant.InquirySubjectDefault)
}

// CreateContact is the general contact form. It lands in the same inquiry
// queue with a different default subject so staff can tell the two apart.
func (c *Inquiry) CreateContact(ctx *fiber.Ctx) error {
	return c.create(ctx, constant.ContactSubjectDefault)
}

func (c *Inquiry) create(ctx *fiber.Ctx, defaultSubject string) error {
	var req types.InquiryRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	inquiry, err := c.InquiryService.Create(ctx.UserContext(), &req, defaultSubject)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(inquiry)
}
