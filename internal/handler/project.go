package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
	"github.com/tensorcube/tensorcube-web/internal/service"
)

type IProjectHandler interface {
	GetProjectAll(c *fiber.Ctx) error
	CreateProject(c *fiber.Ctx) error
	DeleteProject(c *fiber.Ctx) error
	UpdateProjectClassLabels(c *fiber.Ctx) error

	GetProjectMembership(c *fiber.Ctx) error
	CreateProjectMembership(c *fiber.Ctx) error
	UpdateProjectMembership(c *fiber.Ctx) error
	DeleteProjectMembership(c *fiber.Ctx) error

	CreateProjectMembershipTicket(c *fiber.Ctx) error
	GetProjectMembershipTickets(c *fiber.Ctx) error
	GetProjectTicket(c *fiber.Ctx) error
	DeleteProjectTicket(c *fiber.Ctx) error

	GetProjectDataPairs(c *fiber.Ctx) error
	AddProjectDataPairs(c *fiber.Ctx) error
	GetProjectDataPair(c *fiber.Ctx) error
	GetProjectDataPairThumbnail(c *fiber.Ctx) error
}

type projectHandler struct {
	newService service.AppServiceFactory
}

func NewProjectHandler(f service.AppServiceFactory) IProjectHandler {
	return &projectHandler{
		newService: f,
	}
}

func (p *projectHandler) projects(c *fiber.Ctx) service.IProjectService {
	return appService(c, p.newService).Project()
}

func (p *projectHandler) GetProjectAll(c *fiber.Ctx) error {
	return sendEnvelope(c, p.projects(c).GetProjectAll(c.UserContext()))
}

func (p *projectHandler) CreateProject(c *fiber.Ctx) error {
	var req request.CreateProjectRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).CreateProject(c.UserContext(), req))
}

func (p *projectHandler) DeleteProject(c *fiber.Ctx) error {
	var req request.MembershipIDParam
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).DeleteProject(c.UserContext(), req.MembershipID))
}

// UpdateProjectClassLabels takes membership_id from the query and
// {"value": {...}} from the body, like the API does.
func (p *projectHandler) UpdateProjectClassLabels(c *fiber.Ctx) error {
	var param request.MembershipIDParam
	if ok, err := parseQuery(c, &param); !ok {
		return err
	}

	var body request.ClassLabelsBody
	if ok, err := parseBody(c, &body); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).UpdateProjectClassLabels(c.UserContext(), param.MembershipID, body.Value))
}

func (p *projectHandler) GetProjectMembership(c *fiber.Ctx) error {
	var req request.MembershipIDParam
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).GetProjectMembership(c.UserContext(), req.MembershipID))
}

func (p *projectHandler) CreateProjectMembership(c *fiber.Ctx) error {
	var req request.CreateProjectMembershipRequest
	if ok, err := parseQueryAndBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).CreateProjectMembership(c.UserContext(), req))
}

func (p *projectHandler) UpdateProjectMembership(c *fiber.Ctx) error {
	var req request.UpdateProjectMembershipRequest
	if ok, err := parseQueryAndBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).UpdateProjectMembership(c.UserContext(), req))
}

func (p *projectHandler) DeleteProjectMembership(c *fiber.Ctx) error {
	var req request.DeleteProjectMembershipRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).DeleteProjectMembership(c.UserContext(), req.MembershipID, req.Revoke))
}

func (p *projectHandler) CreateProjectMembershipTicket(c *fiber.Ctx) error {
	var req request.CreateProjectMembershipTicketRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).CreateProjectMembershipTicket(c.UserContext(), req.MembershipID, req.Length))
}

func (p *projectHandler) GetProjectMembershipTickets(c *fiber.Ctx) error {
	var req request.MembershipIDParam
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).GetProjectMembershipTickets(c.UserContext(), req.MembershipID))
}

func (p *projectHandler) GetProjectTicket(c *fiber.Ctx) error {
	var req request.ProjectTicketRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).GetProjectTicket(c.UserContext(), req.MembershipID, req.TicketID))
}

func (p *projectHandler) DeleteProjectTicket(c *fiber.Ctx) error {
	var req request.ProjectTicketRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).DeleteProjectTicket(c.UserContext(), req.MembershipID, req.TicketID))
}

func (p *projectHandler) GetProjectDataPairs(c *fiber.Ctx) error {
	var req request.ProjectDataPairsRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).GetProjectDataPairs(c.UserContext(), req))
}

func (p *projectHandler) AddProjectDataPairs(c *fiber.Ctx) error {
	var req request.AddProjectDataPairsRequest
	if ok, err := parseQueryAndBody(c, &req); !ok {
		return err
	}

	return sendEnvelope(c, p.projects(c).AddProjectDataPairs(c.UserContext(), req))
}

func (p *projectHandler) GetProjectDataPair(c *fiber.Ctx) error {
	var req request.ProjectDataPairRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendFile(c, p.projects(c).GetProjectDataPair(c.UserContext(), req.MembershipID, req.DataPairID))
}

func (p *projectHandler) GetProjectDataPairThumbnail(c *fiber.Ctx) error {
	var req request.ProjectDataPairRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}

	return sendFile(c, p.projects(c).GetProjectDataPairThumbnail(c.UserContext(), req.MembershipID, req.DataPairID))
}
