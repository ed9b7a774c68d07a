package controller

import (
	"errors"

	"moodmate-be/internal/service"
	"moodmate-be/pkg/mood"

	"github.com/gofiber/fiber/v2"
)

// headerSessionID carries the session identity on every stateful endpoint.
const headerSessionID = "X-Session-Id"

func sessionID(ctx *fiber.Ctx) string {
	return ctx.Get(headerSessionID)
}

func ok(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func fail(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.Is(err, service.ErrSessionNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, mood.ErrInvalidMoodLabel),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrUsernameTaken):
		code = fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		code = fiber.StatusUnauthorized
	}

	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": err.Error(),
	})
}
