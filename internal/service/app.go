package service

import (
	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/pkg/cookie"
)

// IAppService groups the endpoint registries bound to one cookie store.
type IAppService interface {
	User() IUserService
	Project() IProjectService
}

type appService struct {
	user    IUserService
	project IProjectService
}

func NewAppService(l *logrus.Logger, c *APIClient, s cookie.IStore) IAppService {
	return &appService{
		user:    NewUserService(l, c, s),
		project: NewProjectService(l, c, s),
	}
}

func (as *appService) User() IUserService {
	return as.user
}

func (as *appService) Project() IProjectService {
	return as.project
}

// AppServiceFactory binds the registries to a per-request cookie store.
type AppServiceFactory func(s cookie.IStore) IAppService

func NewAppServiceFactory(l *logrus.Logger, c *APIClient) AppServiceFactory {
	return func(s cookie.IStore) IAppService {
		return NewAppService(l, c, s)
	}
}
