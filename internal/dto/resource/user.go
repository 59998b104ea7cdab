package resource

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

type UserProfile struct {
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Affiliation *string `json:"affiliation"`
}

type Subscription struct {
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetUserResponse struct {
	UserProfile  UserProfile  `json:"user_profile"`
	Subscription Subscription `json:"subscription"`
}

type UpdateUserResponse struct {
	Username    string `json:"username"`
	Affiliation string `json:"affiliation"`
}
