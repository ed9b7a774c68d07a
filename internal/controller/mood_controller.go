package controller

import (
	"io"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/serverutils"
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	Detect(ctx *fiber.Ctx) error
	Timeline(ctx *fiber.Ctx) error
}

type moodController struct {
	service service.IMoodService
}

func NewMoodController(service service.IMoodService) IMoodController {
	return &moodController{service: service}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood")
	h.Post("", c.Record)
	h.Post("/detect", c.Detect)
	h.Get("/timeline", c.Timeline)
}

func (c *moodController) Record(ctx *fiber.Ctx) error {
	var req dto.RecordMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	res, err := c.service.Record(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Mood recorded", res)
}

// Detect takes a multipart upload under the "image" field, with an optional
// "persist" form value ("true" writes a journal row for logged-in users).
func (c *moodController) Detect(ctx *fiber.Ctx) error {
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
	persist := ctx.FormValue("persist") == "true"

	res, err := c.service.DetectFromImage(ctx.Context(), sessionID(ctx), img, persist)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Emotion detected", res)
}

func (c *moodController) Timeline(ctx *fiber.Ctx) error {
	res, err := c.service.Timeline(sessionID(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Mood timeline", res)
}
