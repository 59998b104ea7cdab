// Package envelope holds the uniform result shape returned by every endpoint
// of the API binding layer. Outcomes are values, never errors.
package envelope

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindUnauthorized
	KindServerRejected
	KindTransportFailure
	KindUnexpectedStatus
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindUnauthorized:
		return "unauthorized"
	case KindServerRejected:
		return "server_rejected"
	case KindTransportFailure:
		return "transport_failure"
	case KindUnexpectedStatus:
		return "unexpected_status"
	case KindInvalidInput:
		return "invalid_input"
	}

	return "unknown"
}

const (
	SuccessMsg          = "success"
	UnexpectedStatusMsg = "Unexpected response status"
	UnauthorizedMsg     = "Unauthorized"
	TransportFailureMsg = "An unexpected error occurred"
	InvalidInputMsg     = "Invalid input"
)

// Envelope is {status, message, data?}. Data is only set when Status is 200.
type Envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	Kind    Kind   `json:"-"`
}

func (e Envelope[T]) OK() bool {
	return e.Kind == KindSuccess
}

func Success[T any](data T) Envelope[T] {
	return SuccessWithMessage(SuccessMsg, data)
}

func SuccessWithMessage[T any](msg string, data T) Envelope[T] {
	return Envelope[T]{
		Status:  http.StatusOK,
		Message: msg,
		Data:    &data,
		Kind:    KindSuccess,
	}
}

// Unexpected is a response that reached us without a transport error but was not a 200.
func Unexpected[T any](status int, msg ...string) Envelope[T] {
	return Envelope[T]{
		Status:  status,
		Message: firstOr(msg, UnexpectedStatusMsg),
		Kind:    KindUnexpectedStatus,
	}
}

func Unauthorized[T any]() Envelope[T] {
	return Envelope[T]{
		Status:  http.StatusUnauthorized,
		Message: UnauthorizedMsg,
		Kind:    KindUnauthorized,
	}
}

// Rejected is any other error status the server answered with.
func Rejected[T any](status int, msg ...string) Envelope[T] {
	return Envelope[T]{
		Status:  status,
		Message: firstOr(msg, FailedMessage(status)),
		Kind:    KindServerRejected,
	}
}

// TransportFailure is used when no HTTP response was received.
func TransportFailure[T any]() Envelope[T] {
	return Envelope[T]{
		Status:  http.StatusInternalServerError,
		Message: TransportFailureMsg,
		Kind:    KindTransportFailure,
	}
}

func InvalidInput[T any]() Envelope[T] {
	return Envelope[T]{
		Status:  http.StatusBadRequest,
		Message: InvalidInputMsg,
		Kind:    KindInvalidInput,
	}
}

// FailedMessage is the single formatting rule for rejected requests.
func FailedMessage(status int) string {
	return fmt.Sprintf("Failed: Request failed with status code %d", status)
}

// Acknowledged is a success that carries no data.
func Acknowledged[T any](status int, msg string) Envelope[T] {
	return Envelope[T]{
		Status:  status,
		Message: msg,
		Kind:    KindSuccess,
	}
}

// FromStatus maps a received HTTP status onto the envelope taxonomy.
// Only a 200 carries data.
func FromStatus[T any](status int, data T) Envelope[T] {
	if status == http.StatusOK {
		return Success(data)
	}

	return Failure[T](status)
}

// Failure maps a received status other than 200.
func Failure[T any](status int) Envelope[T] {
	switch {
	case status == http.StatusUnauthorized:
		return Unauthorized[T]()
	case status >= http.StatusBadRequest:
		return Rejected[T](status)
	default:
		return Unexpected[T](status)
	}
}

func firstOr(msg []string, fallback string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}

	return fallback
}
