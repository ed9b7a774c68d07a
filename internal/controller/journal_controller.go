package controller

import (
	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/serverutils"
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IJournalController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Sentiment(ctx *fiber.Ctx) error
}

type journalController struct {
	service service.IJournalService
}

func NewJournalController(service service.IJournalService) IJournalController {
	return &journalController{service: service}
}

func (c *journalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/journal")
	h.Post("", c.Create)
	h.Get("", c.Recent)
	h.Get("/history", serverutils.JwtMiddleware, c.History) // ✅ PROTECTED: token required
	h.Get("/sentiment", c.Sentiment)
}

func (c *journalController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateJournalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	res, err := c.service.Append(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Journal saved", res)
}

func (c *journalController) Recent(ctx *fiber.Ctx) error {
	res, err := c.service.Recent(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Recent journals", res)
}

// History lists the logged-in user's persisted rows, optionally narrowed
// with ?emotion=<label>.
func (c *journalController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), sessionID(ctx), ctx.Query("emotion"))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Journal history", res)
}

func (c *journalController) Sentiment(ctx *fiber.Ctx) error {
	res, err := c.service.Sentiment(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Journal sentiment", res)
}
