package routes

import (
	"github.com/ahmetcoskunkizilkaya/contactbook/internal/config"
	"github.com/ahmetcoskunkizilkaya/contactbook/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/contactbook/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.All("/register", middleware.MethodNotAllowed(fiber.MethodPost))
	auth.Post("/login", authHandler.Login)
	auth.All("/login", middleware.MethodNotAllowed(fiber.MethodPost))
	auth.Post("/check-email", authHandler.CheckEmail)
	auth.All("/check-email", middleware.MethodNotAllowed(fiber.MethodPost))

	// Contacts — session token required
	contacts := api.Group("/contacts", middleware.JWTProtected(cfg))
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.All("/", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))
	contacts.Get("/:id", contactHandler.Get)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)
	contacts.All("/:id", middleware.MethodNotAllowed(fiber.MethodGet, fiber.MethodPut, fiber.MethodDelete))
}
