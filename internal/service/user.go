package service

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/internal/dto/request"
	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/pkg/constants"
	"github.com/tensorcube/tensorcube-web/pkg/cookie"
	"github.com/tensorcube/tensorcube-web/pkg/envelope"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
	"github.com/tensorcube/tensorcube-web/pkg/validation"
)

// IUserService is the user endpoint registry.
type IUserService interface {
	Login(ctx context.Context, email, password string) envelope.Envelope[resource.LoginResponse]
	Logout(ctx context.Context) envelope.Envelope[struct{}]
	Register(ctx context.Context, req request.RegisterRequest) envelope.Envelope[struct{}]
	GetUser(ctx context.Context, serverToken string) envelope.Envelope[resource.GetUserResponse]
	UpdateUser(ctx context.Context, req request.UpdateUserRequest) envelope.Envelope[resource.UpdateUserResponse]
	UpdatePassword(ctx context.Context, req request.UpdatePasswordRequest) envelope.Envelope[struct{}]
}

var registerValidator = sync.OnceValue(validation.InitValidator)

type userService struct {
	logger    *logrus.Logger
	client    *APIClient
	store     cookie.IStore
	validator validation.IValidator
}

func NewUserService(l *logrus.Logger, c *APIClient, s cookie.IStore) IUserService {
	return &userService{
		logger:    l,
		client:    c,
		store:     s,
		validator: registerValidator(),
	}
}

// Login posts the credentials form-encoded. Only a 200 writes the jwt and
// username cookies.
func (us *userService) Login(ctx context.Context, email, password string) envelope.Envelope[resource.LoginResponse] {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := apiRequest{
		method:      http.MethodPost,
		path:        constants.UserLoginPath,
		body:        []byte(form.Encode()),
		contentType: utils.FormMediaType,
		anonymous:   true,
	}

	resp, err := us.client.do(ctx, req)
	if err != nil {
		return envelope.TransportFailure[resource.LoginResponse]()
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return envelope.Unauthorized[resource.LoginResponse]()
	case resp.StatusCode == http.StatusBadRequest:
		return envelope.Rejected[resource.LoginResponse](resp.StatusCode, constants.LoginIncorrectPasswordMsg)
	case resp.StatusCode == http.StatusNotFound:
		return envelope.Rejected[resource.LoginResponse](resp.StatusCode, constants.LoginUserNotFoundMsg)
	case resp.StatusCode >= http.StatusBadRequest:
		us.client.logStatus(req, resp.StatusCode)
		return envelope.Rejected[resource.LoginResponse](resp.StatusCode, constants.LoginFailedMsg)
	default:
		return envelope.Unexpected[resource.LoginResponse](resp.StatusCode, constants.LoginUnexpectedStatusMsg)
	}

	data, err := decodeBody[resource.LoginResponse](resp.Body)
	if err != nil {
		us.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrDecodeResponse)
		return envelope.TransportFailure[resource.LoginResponse]()
	}

	us.store.Set(constants.JWTCookieName, data.AccessToken, cookie.DefaultAttributes())
	us.store.Set(constants.UsernameCookieName, cookie.EncodeURIComponent(data.Username), cookie.DefaultAttributes())

	return envelope.SuccessWithMessage(constants.LoginSuccessMsg, data)
}

// Logout only drops the session cookies; the API has no logout endpoint.
func (us *userService) Logout(_ context.Context) envelope.Envelope[struct{}] {
	us.store.Delete(constants.JWTCookieName)
	us.store.Delete(constants.UsernameCookieName)

	return envelope.Acknowledged[struct{}](http.StatusOK, constants.LogoutSuccessMsg)
}

// Register validates the form before anything is sent. Server rejections
// surface the API's detail message when it has one.
func (us *userService) Register(ctx context.Context, form request.RegisterRequest) envelope.Envelope[struct{}] {
	if errs := us.validator.Validate(form); len(errs) > 0 {
		us.logger.WithField("errors", errs).Debug("register form rejected")
		return envelope.InvalidInput[struct{}]()
	}

	req, err := jsonRequest(http.MethodPost, constants.UserRegisterPath, nil, form)
	if err != nil {
		us.logger.WithError(err).Error(constants.ErrEncodeRequest)
		return envelope.TransportFailure[struct{}]()
	}
	req.anonymous = true

	resp, err := us.client.do(ctx, req)
	if err != nil {
		return envelope.TransportFailure[struct{}]()
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusCreated:
		return envelope.Acknowledged[struct{}](resp.StatusCode, constants.RegisterSuccessMsg)
	case resp.StatusCode == http.StatusUnauthorized:
		return envelope.Unauthorized[struct{}]()
	case resp.StatusCode >= http.StatusBadRequest:
		us.client.logStatus(req, resp.StatusCode)
		msg := detailMessage(resp.Body)
		if msg == "" {
			msg = constants.RegisterFailedMsg
		}
		return envelope.Rejected[struct{}](resp.StatusCode, msg)
	default:
		return envelope.Unexpected[struct{}](resp.StatusCode, constants.RegisterUnexpectedStatusMsg)
	}
}

// GetUser prefers serverToken (a token forwarded by a server-side caller)
// over the jwt cookie.
func (us *userService) GetUser(ctx context.Context, serverToken string) envelope.Envelope[resource.GetUserResponse] {
	token := serverToken
	if token == "" {
		token = bearerToken(us.store)
	}

	return fetchJSON[resource.GetUserResponse](ctx, us.client, apiRequest{
		method: http.MethodGet,
		path:   constants.UserProfilePath,
		bearer: token,
	})
}

func (us *userService) UpdateUser(ctx context.Context, param request.UpdateUserRequest) envelope.Envelope[resource.UpdateUserResponse] {
	req, err := jsonRequest(http.MethodPut, constants.UserProfilePath, nil, param)
	if err != nil {
		us.logger.WithError(err).Error(constants.ErrEncodeRequest)
		return envelope.TransportFailure[resource.UpdateUserResponse]()
	}
	req.bearer = bearerToken(us.store)

	return fetchJSON[resource.UpdateUserResponse](ctx, us.client, req)
}

func (us *userService) UpdatePassword(ctx context.Context, param request.UpdatePasswordRequest) envelope.Envelope[struct{}] {
	req, err := jsonRequest(http.MethodPut, constants.UserPasswordPath, nil, param)
	if err != nil {
		us.logger.WithError(err).Error(constants.ErrEncodeRequest)
		return envelope.TransportFailure[struct{}]()
	}
	req.bearer = bearerToken(us.store)

	return fetchAck(ctx, us.client, req)
}

func bearerToken(s cookie.IStore) string {
	token, _ := s.Get(constants.JWTCookieName)
	return token
}
