package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/pkg/stacktrace"
)

const (
	skipStackTraceFrame = 4
)

// RecoverMiddleware turns a handler panic into an error for the app's
// ErrorHandler and logs it with the panicking stack.
func RecoverMiddleware(l *logrus.Logger) func(c *fiber.Ctx) (err error) {
	return func(c *fiber.Ctx) (err error) {
		t := time.Now()

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}

			l.WithFields(logrus.Fields{
				"request":  getRequestLogFields(c),
				"response": getResponseLogFields(fiber.StatusInternalServerError, t),
				"stack":    stacktrace.NewStackTrace(skipStackTraceFrame),
			}).WithError(err).Error("recovered from panic")
		}()

		return c.Next()
	}
}
