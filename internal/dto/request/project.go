package request

// ClassLabels maps a class index to its label; JSON keys are the decimal index.
type ClassLabels map[int]string

type MembershipIDParam struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
}

type CreateProjectRequest struct {
	ProjectType  string      `json:"project_type" validate:"oneof=classification detection"`
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description"`
	ClassLabels  ClassLabels `json:"class_labels"`
	DirectoryIDs []string    `json:"directory_ids"`
}

type UpdateProjectClassLabelsRequest struct {
	MembershipID string      `json:"membership_id" query:"membership_id" validate:"required"`
	ClassLabels  ClassLabels `json:"class_labels"`
}

type ClassLabelsBody struct {
	Value ClassLabels `json:"value"`
}

type CreateProjectMembershipRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Read         bool   `json:"read"`
	Write        bool   `json:"write"`
}

type CreateProjectMembershipBody struct {
	Email string `json:"email"`
	Read  bool   `json:"read"`
	Write bool   `json:"write"`
}

type UpdateProjectMembershipRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	Update       string `json:"update" query:"update" validate:"required"`
	Read         bool   `json:"read"`
	Write        bool   `json:"write"`
	Owner        bool   `json:"owner"`
}

type UpdateProjectMembershipBody struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
	Owner bool `json:"owner"`
}

type DeleteProjectMembershipRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	Revoke       string `json:"revoke" query:"revoke" validate:"required"`
}

type CreateProjectMembershipTicketRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	Length       int    `json:"length" query:"length" validate:"min=0"`
}

type ProjectTicketRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	TicketID     string `json:"ticket_id" query:"ticket_id" validate:"required"`
}

type ProjectDataPairsRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	Offset       int    `json:"offset" query:"offset" validate:"min=0"`
	PageSize     int    `json:"pageSize" query:"pageSize" validate:"min=0,max=500"`
}

type AddProjectDataPairsRequest struct {
	MembershipID string   `json:"membership_id" query:"membership_id" validate:"required"`
	DirectoryIDs []string `json:"directory_ids"`
	FileIDs      []string `json:"file_ids"`
}

type AddProjectDataPairsBody struct {
	DirectoryIDs []string `json:"directory_ids"`
	FileIDs      []string `json:"file_ids"`
}

type ProjectDataPairRequest struct {
	MembershipID string `json:"membership_id" query:"membership_id" validate:"required"`
	DataPairID   string `json:"datapair_id" query:"datapair_id" validate:"required"`
}
