package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

// LocalizerMiddleware stores a localizer for the request's Accept-Language.
func LocalizerMiddleware(b *i18n.Bundle) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		accept := c.Get(utils.AcceptLanguageKey)
		l := i18n.NewLocalizer(b, utils.GetLanguageFromHeader(accept), accept)
		c.Locals(utils.LocalizerKey, l)

		return c.Next()
	}
}
