package response

import (
	"context"
	"errors"
	"sort"

	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

type ErrorAttribute struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type ErrorSchema struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPSuccessResponse struct {
	Data interface{} `json:"data"`
}

type HTTPErrorResponse struct {
	Error ErrorSchema `json:"error"`
}

type HTTPValidationErrorResponse struct {
	Error      ErrorSchema      `json:"error"`
	Attributes []ErrorAttribute `json:"attributes"`
}

func NewSuccessResponse(data interface{}) HTTPSuccessResponse {
	return HTTPSuccessResponse{
		Data: data,
	}
}

// NewErrorResponse renders err as an error schema. Messages are localized by
// code when a localizer is on ctx and fall back to the ErrorBag message.
func NewErrorResponse(ctx context.Context, err error, msg ...string) HTTPErrorResponse {
	schema := ErrorSchema{
		Code:    utils.UnexpectedErrCode,
		Message: translateOr(ctx, utils.UnexpectedErrCode, utils.UnexpectedMsg),
	}

	var errorBag utils.ErrorBag
	if errors.As(err, &errorBag) {
		schema.Code = errorBag.GetCode()
		schema.Message = translateOr(ctx, schema.Code, errorBag.Message)
	}

	if len(msg) > 0 && msg[0] != "" {
		schema.Message = msg[0]
	}

	return HTTPErrorResponse{Error: schema}
}

func NewBodyParserErrorResponse(ctx context.Context) HTTPErrorResponse {
	return HTTPErrorResponse{
		Error: ErrorSchema{
			Code:    utils.BodyParserErrCode,
			Message: translateOr(ctx, utils.BodyParserErrCode, utils.BodyParserMsg),
		},
	}
}

func NewValidationErrorResponse(ctx context.Context, errors map[string]string) HTTPValidationErrorResponse {
	attrs := make([]ErrorAttribute, 0, len(errors))
	for k, v := range errors {
		attrs = append(attrs, ErrorAttribute{
			Name:    k,
			Message: v,
		})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })

	return HTTPValidationErrorResponse{
		Error: ErrorSchema{
			Code:    utils.ValidationErrCode,
			Message: translateOr(ctx, utils.ValidationErrCode, utils.ValidationMsg),
		},
		Attributes: attrs,
	}
}

func NewAuthorizationError(ctx context.Context) HTTPErrorResponse {
	return HTTPErrorResponse{
		Error: ErrorSchema{
			Code:    utils.UnauthorizedErrCode,
			Message: translateOr(ctx, utils.UnauthorizedErrCode, utils.UnauthorizedMsg),
		},
	}
}

func translateOr(ctx context.Context, code, fallback string) string {
	if ctx == nil {
		return fallback
	}

	if msg := utils.TranslateByIDWithContextFunc(ctx, code); msg != "" {
		return msg
	}

	return fallback
}
