package middleware

import (
	"context"
	"strings"

	"github.com/ansoncht/Cat-Food-Helper/internal/auth/domain"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PrincipalKey locates the authenticated principal in the request locals.
const PrincipalKey = "principal"

const bearerPrefix = "Bearer "

// allowList holds the paths that bypass authentication entirely.
var allowList = map[string]struct{}{
	"/api/v1/user/signup":   {},
	"/api/v1/user/signin":   {},
	"/api/v1/user/sso-auth": {},
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Username string
	Roles    []string
}

func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// PrincipalLoader resolves a token subject to a full user record.
type PrincipalLoader interface {
	LoadByUsername(ctx context.Context, username string) (*domain.User, error)
}

// JWTAuth validates the bearer token on every non-allow-listed request and
// attaches the resulting principal to the request. Requests that fail any
// step stay unauthenticated and are rejected with 401.
func JWTAuth(tokens service.TokenVerifier, users PrincipalLoader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := allowList[c.Path()]; ok {
			return c.Next()
		}

		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" || !tokens.Validate(tokenString) {
			return unauthorized(c)
		}

		subject, err := tokens.ExtractSubject(tokenString)
		if err != nil {
			logger.Error("failed to extract token subject", zap.Error(err))
			return unauthorized(c)
		}

		user, err := users.LoadByUsername(c.UserContext(), subject)
		if err != nil {
			logger.Error("failed to load token subject", zap.String("subject", subject), zap.Error(err))
			return unauthorized(c)
		}

		c.Locals(PrincipalKey, &Principal{Username: user.Username, Roles: user.Roles})

		return c.Next()
	}
}

// RequireRole rejects authenticated requests whose principal lacks the role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals(PrincipalKey).(*Principal)
		if !ok {
			return unauthorized(c)
		}
		if !principal.HasRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		return c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
