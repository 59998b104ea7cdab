package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	di "github.com/tensorcube/tensorcube-web"
	"github.com/tensorcube/tensorcube-web/internal/middleware"
	"github.com/tensorcube/tensorcube-web/internal/route"
	"github.com/tensorcube/tensorcube-web/internal/service"
	"github.com/tensorcube/tensorcube-web/pkg/response"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
	"github.com/tensorcube/tensorcube-web/pkg/validation"
)

type application struct {
	Logger         *logrus.Logger
	LanguageBundle *i18n.Bundle
	APIClient      *service.APIClient
	AllowOrigins   string
}

func initApplication(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		// Override default error handler - Internal server err
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			errBag := utils.NewErrorBag(utils.UnexpectedErrCode, utils.UnexpectedMsg, err)

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				switch code {
				case fiber.StatusNotFound:
					errBag = utils.NewErrorBag(utils.NotFoundErrCode, utils.NotFoundMsg, err)
				case fiber.StatusUnauthorized:
					return c.Status(code).JSON(response.NewAuthorizationError(c.Context()))
				}
			}

			return c.Status(code).JSON(response.NewErrorResponse(c.Context(), errBag))
		},
	})

	// Health check routes
	a.addHealthCheckRoutes(app)

	// Common middleware
	a.addCommonMiddleware(app)

	r := di.InitRoute(a.Logger, a.APIClient)
	r.SetupRoutes(&route.AppContext{
		App: app,
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		errBag := utils.NewErrorBag(utils.NotFoundErrCode, utils.NotFoundMsg, nil)

		return c.Status(fiber.StatusNotFound).JSON(response.NewErrorResponse(c.Context(), errBag))
	})

	return app
}

func (a *application) addCommonMiddleware(app *fiber.App) {
	app.Use(middleware.RecoverMiddleware(a.Logger))
	app.Use(requestid.New(requestid.Config{
		Generator:  utils.GenerateUUIDv4,
		ContextKey: utils.RequestIDKey,
	}))
	app.Use(middleware.LoggerMiddleware(a.Logger))
	app.Use(middleware.LocalizerMiddleware(a.LanguageBundle))
	app.Use(cors.New(cors.Config{
		AllowOrigins: a.AllowOrigins,
	}))

	// Validator
	validator := validation.InitValidator()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(utils.ValidatorKey, validator)

		return c.Next()
	})
}

func (a *application) addHealthCheckRoutes(app *fiber.App) {
	healthCheckHandler := di.InitHealthCheckHandler()
	app.Get("/liveness", healthCheckHandler.Liveness)
	app.Get("/readiness", healthCheckHandler.Readiness)
}
