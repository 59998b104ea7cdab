package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/internal/middleware"
	"github.com/tensorcube/tensorcube-web/internal/service"
	"github.com/tensorcube/tensorcube-web/pkg/constants"
	"github.com/tensorcube/tensorcube-web/pkg/envelope"
	"github.com/tensorcube/tensorcube-web/pkg/response"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

const defaultFileContentType = "application/octet-stream"

// sendEnvelope writes the envelope as is, using its status as the HTTP status.
func sendEnvelope[T any](c *fiber.Ctx, env envelope.Envelope[T]) error {
	return c.Status(env.Status).JSON(env)
}

// sendFile streams a successful binary envelope; failures go out as JSON.
func sendFile(c *fiber.Ctx, env envelope.Envelope[resource.DataPairFile]) error {
	if !env.OK() || env.Data == nil {
		return sendEnvelope(c, env)
	}

	contentType := env.Data.ContentType
	if contentType == "" {
		contentType = defaultFileContentType
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(constants.FilenameHeader, env.Data.Filename)

	return c.Status(fiber.StatusOK).Send(env.Data.File)
}

func appService(c *fiber.Ctx, newService service.AppServiceFactory) service.IAppService {
	return newService(middleware.CookieStore(c))
}

// parseQuery fills req from the query string and validates it. It writes the
// error response itself and reports false when the handler should stop.
func parseQuery(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.QueryParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(response.NewBodyParserErrorResponse(c.Context()))
	}

	return validate(c, req)
}

// parseBody is parseQuery for the request body.
func parseBody(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(response.NewBodyParserErrorResponse(c.Context()))
	}

	return validate(c, req)
}

// parseQueryAndBody fills req from both sources before validating once.
func parseQueryAndBody(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.QueryParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(response.NewBodyParserErrorResponse(c.Context()))
	}

	return parseBody(c, req)
}

func validate(c *fiber.Ctx, req interface{}) (bool, error) {
	if errs := utils.ValidateWithContext(c.Context(), req); len(errs) > 0 {
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewValidationErrorResponse(c.Context(), errs))
	}

	return true, nil
}
