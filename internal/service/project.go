package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/pkg/constants"
	"github.com/tensorcube/tensorcube-web/pkg/cookie"
	"github.com/tensorcube/tensorcube-web/pkg/envelope"
)

const (
	membershipIDQuery = "membership_id"
	updateQuery       = "update"
	revokeQuery       = "revoke"
	lengthQuery       = "length"
	ticketIDQuery     = "ticket_id"
	offsetQuery       = "offset"
	pageSizeQuery     = "pageSize"
	dataPairIDQuery   = "datapair_id"
)

// IProjectService is the project endpoint registry.
type IProjectService interface {
	GetProjectAll(ctx context.Context) envelope.Envelope[resource.GetProjectAllResponse]
	CreateProject(ctx context.Context, req request.CreateProjectRequest) envelope.Envelope[resource.MembershipIDResponse]
	DeleteProject(ctx context.Context, membershipID string) envelope.Envelope[resource.DeleteProjectResponse]
	UpdateProjectClassLabels(ctx context.Context, membershipID string, labels request.ClassLabels) envelope.Envelope[resource.RawResponse]

	GetProjectMembership(ctx context.Context, membershipID string) envelope.Envelope[resource.ProjectMembershipResponse]
	CreateProjectMembership(ctx context.Context, req request.CreateProjectMembershipRequest) envelope.Envelope[resource.RawResponse]
	UpdateProjectMembership(ctx context.Context, req request.UpdateProjectMembershipRequest) envelope.Envelope[resource.RawResponse]
	DeleteProjectMembership(ctx context.Context, membershipID, revoke string) envelope.Envelope[resource.RawResponse]

	CreateProjectMembershipTicket(ctx context.Context, membershipID string, length int) envelope.Envelope[resource.CreateTicketResponse]
	GetProjectMembershipTickets(ctx context.Context, membershipID string) envelope.Envelope[resource.TicketIDsResponse]
	GetProjectTicket(ctx context.Context, membershipID, ticketID string) envelope.Envelope[resource.ProjectTicketResponse]
	DeleteProjectTicket(ctx context.Context, membershipID, ticketID string) envelope.Envelope[resource.DeleteTicketResponse]

	GetProjectDataPairs(ctx context.Context, req request.ProjectDataPairsRequest) envelope.Envelope[resource.DataPairsResponse]
	AddProjectDataPairs(ctx context.Context, req request.AddProjectDataPairsRequest) envelope.Envelope[resource.RawResponse]
	GetProjectDataPair(ctx context.Context, membershipID, dataPairID string) envelope.Envelope[resource.DataPairFile]
	GetProjectDataPairThumbnail(ctx context.Context, membershipID, dataPairID string) envelope.Envelope[resource.DataPairFile]
}

type projectService struct {
	logger *logrus.Logger
	client *APIClient
	store  cookie.IStore
}

func NewProjectService(l *logrus.Logger, c *APIClient, s cookie.IStore) IProjectService {
	return &projectService{
		logger: l,
		client: c,
		store:  s,
	}
}

func (ps *projectService) GetProjectAll(ctx context.Context) envelope.Envelope[resource.GetProjectAllResponse] {
	return fetchJSON[resource.GetProjectAllResponse](ctx, ps.client, ps.request(http.MethodGet, constants.ProjectPath, nil))
}

func (ps *projectService) CreateProject(ctx context.Context, param request.CreateProjectRequest) envelope.Envelope[resource.MembershipIDResponse] {
	req, err := ps.jsonRequest(http.MethodPost, constants.ProjectPath, nil, param)
	if err != nil {
		return envelope.TransportFailure[resource.MembershipIDResponse]()
	}

	return fetchJSON[resource.MembershipIDResponse](ctx, ps.client, req)
}

func (ps *projectService) DeleteProject(ctx context.Context, membershipID string) envelope.Envelope[resource.DeleteProjectResponse] {
	req := ps.request(http.MethodDelete, constants.ProjectPath, membershipQuery(membershipID))

	return fetchJSON[resource.DeleteProjectResponse](ctx, ps.client, req)
}

func (ps *projectService) UpdateProjectClassLabels(ctx context.Context, membershipID string, labels request.ClassLabels) envelope.Envelope[resource.RawResponse] {
	req, err := ps.jsonRequest(http.MethodPut, constants.ProjectClassLabelsPath, membershipQuery(membershipID), request.ClassLabelsBody{Value: labels})
	if err != nil {
		return envelope.TransportFailure[resource.RawResponse]()
	}

	return fetchJSON[resource.RawResponse](ctx, ps.client, req)
}

// GetProjectMembership echoes membershipID into the result since the API
// response does not carry it.
func (ps *projectService) GetProjectMembership(ctx context.Context, membershipID string) envelope.Envelope[resource.ProjectMembershipResponse] {
	req := ps.request(http.MethodGet, constants.ProjectMembershipPath, membershipQuery(membershipID))

	result := fetchJSON[resource.ProjectMembershipResponse](ctx, ps.client, req)
	if result.Data != nil {
		result.Data.MembershipID = membershipID
	}

	return result
}

func (ps *projectService) CreateProjectMembership(ctx context.Context, param request.CreateProjectMembershipRequest) envelope.Envelope[resource.RawResponse] {
	body := request.CreateProjectMembershipBody{
		Email: param.Email,
		Read:  param.Read,
		Write: param.Write,
	}

	req, err := ps.jsonRequest(http.MethodPost, constants.ProjectMembershipPath, membershipQuery(param.MembershipID), body)
	if err != nil {
		return envelope.TransportFailure[resource.RawResponse]()
	}

	return fetchJSON[resource.RawResponse](ctx, ps.client, req)
}

func (ps *projectService) UpdateProjectMembership(ctx context.Context, param request.UpdateProjectMembershipRequest) envelope.Envelope[resource.RawResponse] {
	query := membershipQuery(param.MembershipID)
	query.Set(updateQuery, param.Update)

	body := request.UpdateProjectMembershipBody{
		Read:  param.Read,
		Write: param.Write,
		Owner: param.Owner,
	}

	req, err := ps.jsonRequest(http.MethodPut, constants.ProjectMembershipPath, query, body)
	if err != nil {
		return envelope.TransportFailure[resource.RawResponse]()
	}

	return fetchJSON[resource.RawResponse](ctx, ps.client, req)
}

func (ps *projectService) DeleteProjectMembership(ctx context.Context, membershipID, revoke string) envelope.Envelope[resource.RawResponse] {
	query := membershipQuery(membershipID)
	query.Set(revokeQuery, revoke)

	return fetchJSON[resource.RawResponse](ctx, ps.client, ps.request(http.MethodDelete, constants.ProjectMembershipPath, query))
}

func (ps *projectService) CreateProjectMembershipTicket(ctx context.Context, membershipID string, length int) envelope.Envelope[resource.CreateTicketResponse] {
	query := membershipQuery(membershipID)
	query.Set(lengthQuery, strconv.Itoa(length))

	req, err := ps.jsonRequest(http.MethodPost, constants.ProjectMembershipTicketPath, query, struct{}{})
	if err != nil {
		return envelope.TransportFailure[resource.CreateTicketResponse]()
	}

	return fetchJSON[resource.CreateTicketResponse](ctx, ps.client, req)
}

func (ps *projectService) GetProjectMembershipTickets(ctx context.Context, membershipID string) envelope.Envelope[resource.TicketIDsResponse] {
	req := ps.request(http.MethodGet, constants.ProjectMembershipTicketsPath, membershipQuery(membershipID))

	return fetchJSON[resource.TicketIDsResponse](ctx, ps.client, req)
}

func (ps *projectService) GetProjectTicket(ctx context.Context, membershipID, ticketID string) envelope.Envelope[resource.ProjectTicketResponse] {
	query := membershipQuery(membershipID)
	query.Set(ticketIDQuery, ticketID)

	return fetchJSON[resource.ProjectTicketResponse](ctx, ps.client, ps.request(http.MethodGet, constants.ProjectTicketPath, query))
}

func (ps *projectService) DeleteProjectTicket(ctx context.Context, membershipID, ticketID string) envelope.Envelope[resource.DeleteTicketResponse] {
	query := membershipQuery(membershipID)
	query.Set(ticketIDQuery, ticketID)

	return fetchJSON[resource.DeleteTicketResponse](ctx, ps.client, ps.request(http.MethodDelete, constants.ProjectTicketPath, query))
}

func (ps *projectService) GetProjectDataPairs(ctx context.Context, param request.ProjectDataPairsRequest) envelope.Envelope[resource.DataPairsResponse] {
	query := membershipQuery(param.MembershipID)
	query.Set(offsetQuery, strconv.Itoa(param.Offset))
	query.Set(pageSizeQuery, strconv.Itoa(param.PageSize))

	return fetchJSON[resource.DataPairsResponse](ctx, ps.client, ps.request(http.MethodGet, constants.ProjectDataPairsPath, query))
}

func (ps *projectService) AddProjectDataPairs(ctx context.Context, param request.AddProjectDataPairsRequest) envelope.Envelope[resource.RawResponse] {
	body := request.AddProjectDataPairsBody{
		DirectoryIDs: param.DirectoryIDs,
		FileIDs:      param.FileIDs,
	}

	req, err := ps.jsonRequest(http.MethodPost, constants.ProjectDataPairsPath, membershipQuery(param.MembershipID), body)
	if err != nil {
		return envelope.TransportFailure[resource.RawResponse]()
	}

	return fetchJSON[resource.RawResponse](ctx, ps.client, req)
}

func (ps *projectService) GetProjectDataPair(ctx context.Context, membershipID, dataPairID string) envelope.Envelope[resource.DataPairFile] {
	req := ps.request(http.MethodGet, constants.ProjectDataPairPath, dataPairQuery(membershipID, dataPairID))

	return fetchFile(ctx, ps.client, req, false)
}

func (ps *projectService) GetProjectDataPairThumbnail(ctx context.Context, membershipID, dataPairID string) envelope.Envelope[resource.DataPairFile] {
	req := ps.request(http.MethodGet, constants.ProjectDataPairThumbnailPath, dataPairQuery(membershipID, dataPairID))

	return fetchFile(ctx, ps.client, req, true)
}

func (ps *projectService) request(method, path string, query url.Values) apiRequest {
	return apiRequest{
		method: method,
		path:   path,
		query:  query,
		bearer: bearerToken(ps.store),
	}
}

func (ps *projectService) jsonRequest(method, path string, query url.Values, body interface{}) (apiRequest, error) {
	req, err := jsonRequest(method, path, query, body)
	if err != nil {
		ps.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrEncodeRequest)
		return req, err
	}
	req.bearer = bearerToken(ps.store)

	return req, nil
}

func membershipQuery(membershipID string) url.Values {
	query := url.Values{}
	query.Set(membershipIDQuery, membershipID)

	return query
}

func dataPairQuery(membershipID, dataPairID string) url.Values {
	query := membershipQuery(membershipID)
	query.Set(dataPairIDQuery, dataPairID)

	return query
}
