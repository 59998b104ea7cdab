package tensorcubeweb

import (
	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/config"
	"github.com/tensorcube/tensorcube-web/internal/handler"
	"github.com/tensorcube/tensorcube-web/internal/route"
	"github.com/tensorcube/tensorcube-web/internal/service"
)

func InitHealthCheckHandler() handler.IHealthCheckHandler {
	iHealthCheckHandler := handler.NewHealthCheckHandler()
	return iHealthCheckHandler
}

func InitAPIClient(l *logrus.Logger, apiConfig config.APIConfig) *service.APIClient {
	return service.NewAPIClient(l, service.APIClientConfig{
		BaseURL: apiConfig.BaseURL,
		Timeout: apiConfig.Timeout,
	})
}

func InitRoute(l *logrus.Logger, apiClient *service.APIClient) route.IRoute {
	appServiceFactory := service.NewAppServiceFactory(l, apiClient)
	iAppHandler := handler.NewAppHandler()
	iUserHandler := handler.NewUserHandler(appServiceFactory)
	iProjectHandler := handler.NewProjectHandler(appServiceFactory)
	iRoute := route.NewRoute(iAppHandler, iUserHandler, iProjectHandler)
	return iRoute
}
