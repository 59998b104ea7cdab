package constants

// Login messages
const (
	LoginSuccessMsg           = "login success"
	LoginUnexpectedStatusMsg  = "Login successful but unexpected response"
	LoginIncorrectPasswordMsg = "Incorrect password"
	LoginUserNotFoundMsg      = "User not found"
	LoginFailedMsg            = "Login failed"
	LogoutSuccessMsg          = "logout success"
)

// Registration messages
const (
	RegisterSuccessMsg          = "Registration successful"
	RegisterUnexpectedStatusMsg = "Registration successful but unexpected response"
	RegisterFailedMsg           = "Registration failed"
)

// Log messages
const (
	ErrBuildRequest   = "failed to create request"
	ErrSendRequest    = "failed to send request"
	ErrReadResponse   = "failed to read response body"
	ErrDecodeResponse = "failed to decode response"
	ErrEncodeRequest  = "failed to marshal request"
	ErrRequestStatus  = "request returned non-success status"
)
