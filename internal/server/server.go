package server

import (
	"log"

	"moodmate-be/internal/bootstrap"
	"moodmate-be/internal/config"
	"moodmate-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, covers camera uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Session-Id",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Token holders get their identity resolved on every route; guests pass
	// through untouched. Routes that demand a token add JwtMiddleware.
	api.Use(serverutils.OptionalJwtMiddleware)

	c.AuthController.RegisterRoutes(api)
	c.SessionController.RegisterRoutes(api)

	c.MoodController.RegisterRoutes(api)
	c.JournalController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.SuggestionController.RegisterRoutes(api)
	c.ProfileController.RegisterRoutes(api)
}
