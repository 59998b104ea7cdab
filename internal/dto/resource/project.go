package resource

import (
	"encoding/json"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
)

type Project struct {
	ProjectType  string              `json:"project_type"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	ClassLabels  request.ClassLabels `json:"class_labels"`
	MembershipID string              `json:"membership_id"`
	IsOwner      bool                `json:"is_owner"`
}

type GetProjectAllResponse struct {
	Projects []Project `json:"projects"`
}

type MembershipIDResponse struct {
	MembershipID string `json:"membership_id"`
}

type DeleteProjectResponse struct {
	DeletedProject string `json:"deleted_project"`
}

type MemberPermission struct {
	ID    string `json:"id"`
	Read  bool   `json:"read"`
	Write bool   `json:"write"`
	Owner bool   `json:"owner"`
}

type ProjectMembershipResponse struct {
	Name         string                      `json:"name"`
	Description  string                      `json:"description"`
	ProjectType  string                      `json:"project_type"`
	ClassLabels  request.ClassLabels         `json:"class_labels"`
	MemberInfo   map[string]MemberPermission `json:"member_info"`
	MembershipID string                      `json:"membership_id"`
}

type CreateTicketResponse struct {
	MembershipID string `json:"membership_id"`
	TicketID     string `json:"ticket_id"`
}

type TicketIDsResponse struct {
	TicketIDs []string `json:"ticket_ids"`
}

type TicketWorker struct {
	WorkerEmail    string `json:"worker_email"`
	WorkerUsername string `json:"worker_username"`
}

type ProjectTicketResponse struct {
	Ticket      TicketWorker `json:"ticket"`
	DataPairIDs []string     `json:"data_pair_ids"`
}

type DeleteTicketResponse struct {
	DeletedTicketID string `json:"deleted_ticket_id"`
}

type DataPairsResponse struct {
	TotalCounts int      `json:"total_counts"`
	DataPairIDs []string `json:"data_pair_ids"`
}

// DataPairFile is a binary payload; ContentType is only filled for thumbnails.
type DataPairFile struct {
	ContentType string `json:"contentType,omitempty"`
	Filename    string `json:"filename"`
	File        []byte `json:"file"`
}

// RawResponse keeps a body whose shape the server does not pin down.
type RawResponse = json.RawMessage
