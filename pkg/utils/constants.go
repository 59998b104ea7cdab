package utils

// Context

const (
	RequestIDKey   = "requestid"
	ValidatorKey   = "validator"
	LocalizerKey   = "localizer"
	CookieStoreKey = "cookieStore"
)

// HTTP Header
const (
	AuthorizationHeaderKey = "Authorization"
	AcceptHeaderKey        = "accept"
	ContentTypeHeaderKey   = "Content-Type"
	AcceptLanguageKey      = "Accept-Language"
)

const (
	BearerAuthType = "Bearer"
	JSONMediaType  = "application/json"
	FormMediaType  = "application/x-www-form-urlencoded"
)
