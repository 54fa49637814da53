package handler

import (
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/middleware"
	"github.com/ansoncht/Cat-Food-Helper/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the user endpoints behind the auth gate. The gate
// itself allow-lists signup, signin and sso-auth.
func RegisterRoutes(app *fiber.App, h *UserHandler, gate fiber.Handler) {
	app.Use(gate)

	app.Post("/api/v1/user/signup", h.SignUp)
	app.Post("/api/v1/user/signin", h.SignIn)
	app.Get("/api/v1/user/protected", middleware.RequireRole(constant.RoleUser), h.Protected)
}
