package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

const accessLogMessage = "weblogger"

func LoggerMiddleware(l *logrus.Logger) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) (err error) {
		t := time.Now()
		err = c.Next()

		entry := l.WithFields(logrus.Fields{
			"request":  getRequestLogFields(c),
			"response": getResponseLogFields(c.Response().StatusCode(), t),
		})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Info(accessLogMessage)

		return err
	}
}

// Query strings carry membership and ticket ids, so they are logged; cookies
// and bodies are not.
func getRequestLogFields(c *fiber.Ctx) logrus.Fields {
	return logrus.Fields{
		"id":     c.Locals(utils.RequestIDKey),
		"method": c.Method(),
		"path":   c.Path(),
		"query":  string(c.Request().URI().QueryString()),
		"ip":     c.IP(),
	}
}

func getResponseLogFields(status int, t time.Time) logrus.Fields {
	return logrus.Fields{
		"status":   status,
		"duration": fmt.Sprint(time.Since(t).Round(time.Millisecond)),
	}
}
