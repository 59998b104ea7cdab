package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorcube/tensorcube-web/pkg/cookie"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

// CookieStoreMiddleware exposes the request cookies as a cookie.IStore and
// forwards whatever the handlers wrote to it as Set-Cookie headers.
func CookieStoreMiddleware() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		store := cookie.NewRequestStore(c.Get(fiber.HeaderCookie))
		c.Locals(utils.CookieStoreKey, store)

		err := c.Next()

		for _, p := range store.Pending() {
			c.Cookie(toFiberCookie(p))
		}

		return err
	}
}

func toFiberCookie(p cookie.Pending) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     p.Name,
		Value:    p.Value,
		Path:     p.Attrs.Path,
		SameSite: p.Attrs.SameSite,
		Secure:   p.Attrs.Secure,
		Expires:  p.Attrs.Expires,
	}
}

// CookieStore returns the store installed by CookieStoreMiddleware, or a
// store over the raw Cookie header when the middleware is not mounted.
func CookieStore(c *fiber.Ctx) *cookie.RequestStore {
	if store, ok := c.Locals(utils.CookieStoreKey).(*cookie.RequestStore); ok {
		return store
	}

	return cookie.NewRequestStore(c.Get(fiber.HeaderCookie))
}
