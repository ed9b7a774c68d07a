package controller

import (
	"io"

	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Image(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Post("/image", c.Upload)
	h.Get("/image", c.Image)
}

func (c *profileController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return fail(ctx, service.ErrInvalidImage)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return fail(ctx, service.ErrInvalidImage)
	}
	defer f.Close()

	img, err := io.ReadAll(f)
	if err != nil {
		return fail(ctx, service.ErrInvalidImage)
	}

	res, err := c.service.Upload(sessionID(ctx), img)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Profile image uploaded", res)
}

func (c *profileController) Image(ctx *fiber.Ctx) error {
	img, err := c.service.Get(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	if len(img) == 0 {
		return fail(ctx, fiber.NewError(fiber.StatusNotFound, "no profile image"))
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(img)
}
