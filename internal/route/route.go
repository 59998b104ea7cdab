package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorcube/tensorcube-web/internal/handler"
	"github.com/tensorcube/tensorcube-web/internal/middleware"
)

type AppContext struct {
	App *fiber.App
}

type IRoute interface {
	SetupRoutes(ac *AppContext)
}

type route struct {
	appHandler     handler.IAppHandler
	userHandler    handler.IUserHandler
	projectHandler handler.IProjectHandler
}

func NewRoute(
	apHandler handler.IAppHandler,
	usHandler handler.IUserHandler,
	prHandler handler.IProjectHandler,
) IRoute {
	return &route{
		appHandler:     apHandler,
		userHandler:    usHandler,
		projectHandler: prHandler,
	}
}

func (r *route) SetupRoutes(ac *AppContext) {
	api := ac.App.Group("/api")

	// v1 routes
	v1Group := api.Group("/v1", middleware.CookieStoreMiddleware())

	r.appRoutes(v1Group)
	r.userRoutes(v1Group)
	r.projectRoutes(v1Group)
}

func (r *route) appRoutes(fr fiber.Router) {
	appGroup := fr.Group("/")
	appGroup.Get("/", r.appHandler.App)
	appGroup.Get("/menu", r.appHandler.Menu)
}

func (r *route) userRoutes(fr fiber.Router) {
	userGroup := fr.Group("/user")
	userGroup.Post("/login", r.userHandler.Login)
	userGroup.Post("/logout", r.userHandler.Logout)
	userGroup.Post("/register", r.userHandler.Register)
	userGroup.Get("/profile", r.userHandler.GetProfile)
	userGroup.Put("/profile", r.userHandler.UpdateProfile)
	userGroup.Put("/password", r.userHandler.UpdatePassword)
}

func (r *route) projectRoutes(fr fiber.Router) {
	projectGroup := fr.Group("/project")
	projectGroup.Get("/", r.projectHandler.GetProjectAll)
	projectGroup.Post("/", r.projectHandler.CreateProject)
	projectGroup.Delete("/", r.projectHandler.DeleteProject)
	projectGroup.Put("/class-labels", r.projectHandler.UpdateProjectClassLabels)

	projectGroup.Get("/membership", r.projectHandler.GetProjectMembership)
	projectGroup.Post("/membership", r.projectHandler.CreateProjectMembership)
	projectGroup.Put("/membership", r.projectHandler.UpdateProjectMembership)
	projectGroup.Delete("/membership", r.projectHandler.DeleteProjectMembership)
	projectGroup.Post("/membership/ticket", r.projectHandler.CreateProjectMembershipTicket)
	projectGroup.Get("/membership/tickets", r.projectHandler.GetProjectMembershipTickets)

	projectGroup.Get("/ticket", r.projectHandler.GetProjectTicket)
	projectGroup.Delete("/ticket", r.projectHandler.DeleteProjectTicket)

	projectGroup.Get("/datapairs", r.projectHandler.GetProjectDataPairs)
	projectGroup.Post("/datapairs", r.projectHandler.AddProjectDataPairs)
	projectGroup.Get("/datapair", r.projectHandler.GetProjectDataPair)
	projectGroup.Get("/datapair/thumbnail", r.projectHandler.GetProjectDataPairThumbnail)
}
