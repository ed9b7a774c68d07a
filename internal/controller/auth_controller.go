package controller

import (
	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/serverutils"
	"moodmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "User registered successfully", res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fail(ctx, err)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Login successful", res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(sessionID(ctx)); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Logged out", nil)
}
