package constants

// User related paths
const (
	UserLoginPath    = "user/login"
	UserRegisterPath = "user/register"
	UserProfilePath  = "user/profile"
	UserPasswordPath = "user/password"
)

// Project related paths
const (
	ProjectPath                  = "project"
	ProjectClassLabelsPath       = "project/class-labels"
	ProjectMembershipPath        = "project/membership"
	ProjectMembershipTicketPath  = "project/membership/ticket"
	ProjectMembershipTicketsPath = "project/membership/tickets"
	ProjectTicketPath            = "project/ticket"
	ProjectDataPairsPath         = "project/datapairs"
	ProjectDataPairPath          = "project/datapair"
	ProjectDataPairThumbnailPath = "project/datapair/thumbnail"
)
