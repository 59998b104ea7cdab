package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/pkg/cookie"
	"github.com/tensorcube/tensorcube-web/pkg/logging"
)

func newTestProjectService(client *APIClient) IProjectService {
	store := cookie.NewMemoryStore()
	store.Set("jwt", "T", cookie.DefaultAttributes())

	return NewProjectService(logging.NewNullLogger(), client, store)
}

func TestGetProjectDataPairs(t *testing.T) {
	api := newMockAPI(t, http.StatusOK, `{"total_counts":120,"data_pair_ids":["a","b"]}`)

	got := newTestProjectService(api.client()).GetProjectDataPairs(context.Background(), request.ProjectDataPairsRequest{
		MembershipID: "m1",
		Offset:       0,
		PageSize:     50,
	})

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":200,"message":"success","data":{"total_counts":120,"data_pair_ids":["a","b"]}}`, string(b))

	sent := api.last(t)
	assert.Equal(t, http.MethodGet, sent.Method)
	assert.Equal(t, "/project/datapairs", sent.Path)
	assert.Equal(t, "m1", sent.Query.Get("membership_id"))
	assert.Equal(t, "0", sent.Query.Get("offset"))
	assert.Equal(t, "50", sent.Query.Get("pageSize"))
	assert.Equal(t, "Bearer T", sent.Header.Get("Authorization"))
	assert.Equal(t, "application/json", sent.Header.Get("Accept"))
}

func TestGetProjectMembership_EchoesMembershipID(t *testing.T) {
	api := newMockAPI(t, http.StatusOK, `{"name":"p","description":"d","project_type":"classification","class_labels":{"0":"cat"},"member_info":{"u@x.com":{"id":"1","read":true,"write":false,"owner":true}}}`)

	got := newTestProjectService(api.client()).GetProjectMembership(context.Background(), "m1")
	require.True(t, got.OK())
	assert.Equal(t, "m1", got.Data.MembershipID)
	assert.Equal(t, "cat", got.Data.ClassLabels[0])
	assert.True(t, got.Data.MemberInfo["u@x.com"].Owner)
}

// Every registry method is checked against its verb, path, query and body.
func TestProjectService_Wire(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(IProjectService) bool
		method string
		path   string
		query  map[string]string
		body   string
	}{
		{
			name:   "GetProjectAll",
			call:   func(s IProjectService) bool { return s.GetProjectAll(ctx).OK() },
			method: http.MethodGet,
			path:   "/project",
		},
		{
			name: "CreateProject",
			call: func(s IProjectService) bool {
				return s.CreateProject(ctx, request.CreateProjectRequest{
					ProjectType:  "classification",
					Name:         "p",
					Description:  "d",
					ClassLabels:  request.ClassLabels{0: "cat", 1: "dog"},
					DirectoryIDs: []string{"dir1"},
				}).OK()
			},
			method: http.MethodPost,
			path:   "/project",
			body:   `{"project_type":"classification","name":"p","description":"d","class_labels":{"0":"cat","1":"dog"},"directory_ids":["dir1"]}`,
		},
		{
			name:   "DeleteProject",
			call:   func(s IProjectService) bool { return s.DeleteProject(ctx, "m1").OK() },
			method: http.MethodDelete,
			path:   "/project",
			query:  map[string]string{"membership_id": "m1"},
		},
		{
			name: "UpdateProjectClassLabels",
			call: func(s IProjectService) bool {
				return s.UpdateProjectClassLabels(ctx, "m1", request.ClassLabels{2: "bird"}).OK()
			},
			method: http.MethodPut,
			path:   "/project/class-labels",
			query:  map[string]string{"membership_id": "m1"},
			body:   `{"value":{"2":"bird"}}`,
		},
		{
			name:   "GetProjectMembership",
			call:   func(s IProjectService) bool { return s.GetProjectMembership(ctx, "m1").OK() },
			method: http.MethodGet,
			path:   "/project/membership",
			query:  map[string]string{"membership_id": "m1"},
		},
		{
			name: "CreateProjectMembership",
			call: func(s IProjectService) bool {
				return s.CreateProjectMembership(ctx, request.CreateProjectMembershipRequest{
					MembershipID: "m1", Email: "w@x.com", Read: true,
				}).OK()
			},
			method: http.MethodPost,
			path:   "/project/membership",
			query:  map[string]string{"membership_id": "m1"},
			body:   `{"email":"w@x.com","read":true,"write":false}`,
		},
		{
			name: "UpdateProjectMembership",
			call: func(s IProjectService) bool {
				return s.UpdateProjectMembership(ctx, request.UpdateProjectMembershipRequest{
					MembershipID: "m1", Update: "w@x.com", Read: true, Write: true,
				}).OK()
			},
			method: http.MethodPut,
			path:   "/project/membership",
			query:  map[string]string{"membership_id": "m1", "update": "w@x.com"},
			body:   `{"read":true,"write":true,"owner":false}`,
		},
		{
			name:   "DeleteProjectMembership",
			call:   func(s IProjectService) bool { return s.DeleteProjectMembership(ctx, "m1", "w@x.com").OK() },
			method: http.MethodDelete,
			path:   "/project/membership",
			query:  map[string]string{"membership_id": "m1", "revoke": "w@x.com"},
		},
		{
			name:   "CreateProjectMembershipTicket",
			call:   func(s IProjectService) bool { return s.CreateProjectMembershipTicket(ctx, "m1", 10).OK() },
			method: http.MethodPost,
			path:   "/project/membership/ticket",
			query:  map[string]string{"membership_id": "m1", "length": "10"},
			body:   `{}`,
		},
		{
			name:   "GetProjectMembershipTickets",
			call:   func(s IProjectService) bool { return s.GetProjectMembershipTickets(ctx, "m1").OK() },
			method: http.MethodGet,
			path:   "/project/membership/tickets",
			query:  map[string]string{"membership_id": "m1"},
		},
		{
			name:   "GetProjectTicket",
			call:   func(s IProjectService) bool { return s.GetProjectTicket(ctx, "m1", "t1").OK() },
			method: http.MethodGet,
			path:   "/project/ticket",
			query:  map[string]string{"membership_id": "m1", "ticket_id": "t1"},
		},
		{
			name:   "DeleteProjectTicket",
			call:   func(s IProjectService) bool { return s.DeleteProjectTicket(ctx, "m1", "t1").OK() },
			method: http.MethodDelete,
			path:   "/project/ticket",
			query:  map[string]string{"membership_id": "m1", "ticket_id": "t1"},
		},
		{
			name: "AddProjectDataPairs",
			call: func(s IProjectService) bool {
				return s.AddProjectDataPairs(ctx, request.AddProjectDataPairsRequest{
					MembershipID: "m1", DirectoryIDs: []string{"d1"}, FileIDs: []string{"f1", "f2"},
				}).OK()
			},
			method: http.MethodPost,
			path:   "/project/datapairs",
			query:  map[string]string{"membership_id": "m1"},
			body:   `{"directory_ids":["d1"],"file_ids":["f1","f2"]}`,
		},
		{
			name:   "GetProjectDataPair",
			call:   func(s IProjectService) bool { return s.GetProjectDataPair(ctx, "m1", "dp1").OK() },
			method: http.MethodGet,
			path:   "/project/datapair",
			query:  map[string]string{"membership_id": "m1", "datapair_id": "dp1"},
		},
		{
			name:   "GetProjectDataPairThumbnail",
			call:   func(s IProjectService) bool { return s.GetProjectDataPairThumbnail(ctx, "m1", "dp1").OK() },
			method: http.MethodGet,
			path:   "/project/datapair/thumbnail",
			query:  map[string]string{"membership_id": "m1", "datapair_id": "dp1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newMockAPI(t, http.StatusOK, "{}")

			assert.True(t, tt.call(newTestProjectService(api.client())))

			sent := api.last(t)
			assert.Equal(t, tt.method, sent.Method)
			assert.Equal(t, tt.path, sent.Path)
			assert.Equal(t, "Bearer T", sent.Header.Get("Authorization"))
			assert.Len(t, sent.Query, len(tt.query))
			for k, v := range tt.query {
				assert.Equal(t, v, sent.Query.Get(k), k)
			}
			if tt.body == "" {
				assert.Empty(t, sent.Body)
			} else {
				assert.JSONEq(t, tt.body, sent.Body)
				assert.Equal(t, "application/json", sent.Header.Get("Content-Type"))
			}
		})
	}
}

func TestProjectService_Unauthorized(t *testing.T) {
	api := newMockAPI(t, http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`)
	svc := newTestProjectService(api.client())
	ctx := context.Background()

	all := svc.GetProjectAll(ctx)
	assert.Equal(t, 401, all.Status)
	assert.Equal(t, "Unauthorized", all.Message)
	assert.Nil(t, all.Data)

	raw := svc.DeleteProjectMembership(ctx, "m1", "w@x.com")
	assert.Equal(t, 401, raw.Status)
	assert.Equal(t, "Unauthorized", raw.Message)

	file := svc.GetProjectDataPair(ctx, "m1", "dp1")
	assert.Equal(t, 401, file.Status)
	assert.Equal(t, "Unauthorized", file.Message)
	assert.Nil(t, file.Data)
}

func TestProjectService_NoResponse(t *testing.T) {
	svc := newTestProjectService(unreachableClient())
	ctx := context.Background()

	membership := svc.GetProjectMembership(ctx, "m1")
	assert.Equal(t, 500, membership.Status)
	assert.Equal(t, "An unexpected error occurred", membership.Message)
	assert.Nil(t, membership.Data)

	ticket := svc.CreateProjectMembershipTicket(ctx, "m1", 1)
	assert.Equal(t, 500, ticket.Status)
	assert.Equal(t, "An unexpected error occurred", ticket.Message)

	thumb := svc.GetProjectDataPairThumbnail(ctx, "m1", "d")
	assert.Equal(t, 500, thumb.Status)
	assert.Nil(t, thumb.Data)
}

func TestGetProjectDataPairThumbnail_Headers(t *testing.T) {
	api := newMockAPI(t, http.StatusOK, "jpeg-bytes", "x-filename", "cat.jpg", "Content-Type", "image/jpeg")

	got := newTestProjectService(api.client()).GetProjectDataPairThumbnail(context.Background(), "m1", "dp1")
	require.True(t, got.OK())
	assert.Equal(t, resource.DataPairFile{ContentType: "image/jpeg", Filename: "cat.jpg", File: []byte("jpeg-bytes")}, *got.Data)
}

func TestNewAppService(t *testing.T) {
	api := newMockAPI(t, http.StatusOK, `{"projects":[]}`)
	store := cookie.NewMemoryStore()
	store.Set("jwt", "T", cookie.DefaultAttributes())

	app := NewAppService(logging.NewNullLogger(), api.client(), store)
	require.NotNil(t, app.User())

	got := app.Project().GetProjectAll(context.Background())
	require.True(t, got.OK())
	assert.Empty(t, got.Data.Projects)
	assert.Equal(t, "Bearer T", api.last(t).Header.Get("Authorization"))
}
