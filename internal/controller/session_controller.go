package controller

import (
	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/serverutils"
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Post("", c.Create)
	h.Get("", c.Show)
	h.Put("/display-name", c.Rename)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res := c.service.Create()
	return ok(ctx, "Session created", res)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Snapshot(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Session snapshot", res)
}

func (c *sessionController) Rename(ctx *fiber.Ctx) error {
	var req dto.UpdateDisplayNameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	if err := c.service.UpdateDisplayName(sessionID(ctx), &req); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Display name updated", nil)
}
