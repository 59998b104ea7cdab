package constants

// Language
const (
	EnglishLanguage = "en"
)

// Session cookies
const (
	JWTCookieName      = "jwt"
	UsernameCookieName = "username"
)

// Response headers of the binary endpoints
const (
	FilenameHeader    = "x-filename"
	ContentTypeHeader = "content-type"
)
