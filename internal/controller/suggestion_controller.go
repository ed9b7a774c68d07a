package controller

import (
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
}

type suggestionController struct {
	service service.ISuggestionService
}

func NewSuggestionController(service service.ISuggestionService) ISuggestionController {
	return &suggestionController{service: service}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggestions")
	h.Get("", c.Get)
}

// Get returns the suggestion bundle for ?mood=<label>, falling back to the
// session's current mood when the query is absent.
func (c *suggestionController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), sessionID(ctx), ctx.Query("mood"))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Suggestions", res)
}
