package controller

import (
	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/serverutils"
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("", c.Send)
	h.Get("", c.Transcript)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	res, err := c.service.Send(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Reply generated", res)
}

func (c *chatController) Transcript(ctx *fiber.Ctx) error {
	res, err := c.service.Transcript(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Chat transcript", res)
}
