package handler

import (
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/dto"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const protectedMessage = "This is a protected endpoint. You are authenticated!"

type UserHandler struct {
	userService  *service.UserService
	tokenService service.TokenVerifier
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewUserHandler(userService *service.UserService, tokenService service.TokenVerifier, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService:  userService,
		tokenService: tokenService,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (h *UserHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	h.logger.Info("signing up user", zap.String("username", input.Username))

	user, err := h.userService.RegisterUser(c.UserContext(), input)
	if err != nil {
		h.logger.Error("user creation failed", zap.String("username", input.Username), zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := h.tokenService.Issue(user.Username)
	if err != nil {
		h.logger.Error("failed to issue token", zap.String("username", user.Username), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not issue token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *UserHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	h.logger.Info("signing in user", zap.String("usernameOrEmail", input.UsernameOrEmail))

	user, err := h.userService.AuthenticateUser(c.UserContext(), input)
	if err != nil {
		h.logger.Error("user login failed", zap.String("usernameOrEmail", input.UsernameOrEmail), zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := h.tokenService.Issue(user.Username)
	if err != nil {
		h.logger.Error("failed to issue token", zap.String("username", user.Username), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not issue token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *UserHandler) Protected(c *fiber.Ctx) error {
	return c.SendString(protectedMessage)
}
