package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tensorcube/tensorcube-web/config"
	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/pkg/navigation"
	"github.com/tensorcube/tensorcube-web/pkg/response"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

type IAppHandler interface {
	App(c *fiber.Ctx) error
	Menu(c *fiber.Ctx) error
}

type appHandler struct{}

func NewAppHandler() IAppHandler {
	return &appHandler{}
}

func (a *appHandler) App(c *fiber.Ctx) error {
	return c.JSON(response.NewSuccessResponse(&resource.AppResource{
		App:     config.GlobalConfig.GetWebConfig().AppName,
		Env:     config.GlobalConfig.GetWebConfig().Env,
		Version: config.GlobalConfig.GetWebConfig().Version,
		APIBase: config.GlobalConfig.GetAPIConfig().BaseURL,
		Time:    time.Now(),
	}))
}

// Menu returns the navigation lists translated for the request language.
func (a *appHandler) Menu(c *fiber.Ctx) error {
	l, _ := c.Locals(utils.LocalizerKey).(*i18n.Localizer)

	return c.JSON(response.NewSuccessResponse(navigation.LocalizedMenu(l)))
}
