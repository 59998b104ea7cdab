package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
	"github.com/tensorcube/tensorcube-web/internal/service"
	"github.com/tensorcube/tensorcube-web/pkg/response"
)

type IUserHandler interface {
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	Register(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	UpdatePassword(c *fiber.Ctx) error
}

type userHandler struct {
	newService service.AppServiceFactory
}

func NewUserHandler(f service.AppServiceFactory) IUserHandler {
	return &userHandler{
		newService: f,
	}
}

// Login accepts the same form-encoded body as the API, or JSON.
func (u *userHandler) Login(c *fiber.Ctx) error {
	var req request.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, appService(c, u.newService).User().Login(c.UserContext(), req.Username, req.Password))
}

func (u *userHandler) Logout(c *fiber.Ctx) error {
	return sendEnvelope(c, appService(c, u.newService).User().Logout(c.UserContext()))
}

// Register leaves field validation to the service so that bad input gets the
// same envelope a direct caller would see.
func (u *userHandler) Register(c *fiber.Ctx) error {
	var req request.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response.NewBodyParserErrorResponse(c.Context()))
	}

	return sendEnvelope(c, appService(c, u.newService).User().Register(c.UserContext(), req))
}

func (u *userHandler) GetProfile(c *fiber.Ctx) error {
	return sendEnvelope(c, appService(c, u.newService).User().GetUser(c.UserContext(), ""))
}

func (u *userHandler) UpdateProfile(c *fiber.Ctx) error {
	var req request.UpdateUserRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, appService(c, u.newService).User().UpdateUser(c.UserContext(), req))
}

func (u *userHandler) UpdatePassword(c *fiber.Ctx) error {
	var req request.UpdatePasswordRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, appService(c, u.newService).User().UpdatePassword(c.UserContext(), req))
}
