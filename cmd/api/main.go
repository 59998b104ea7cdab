package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	di "github.com/tensorcube/tensorcube-web"
	"github.com/tensorcube/tensorcube-web/config"
	"github.com/tensorcube/tensorcube-web/pkg/healthcheck"
	"github.com/tensorcube/tensorcube-web/pkg/localizer"
	"github.com/tensorcube/tensorcube-web/pkg/logging"
)

func main() {
	configureManager := config.NewConfigureManager()
	logger := logging.NewLogger(loggingConfig(configureManager))

	logger.WithField("api", configureManager.GetAPIConfig().BaseURL).Info("starting app")

	app := initApplication(&application{
		Logger: logger,
		LanguageBundle: localizer.InitLocalizer(
			configureManager.GetLanguageConfig().Default, configureManager.GetLanguageConfig().Languages,
		),
		APIClient:    di.InitAPIClient(logger, configureManager.GetAPIConfig()),
		AllowOrigins: configureManager.GetCORSConfig().AllowOrigins,
	})

	go func() {
		healthcheck.InitHealthCheck()

		if serveErr := app.Listen(fmt.Sprintf(":%s", configureManager.GetWebConfig().Port)); serveErr != nil {
			logger.Fatalf("connection: web server %v", serveErr)
		}
	}()

	// Wait for gracefully shutdown (Interrupt)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c

	healthcheck.ServerShutdown()
	if shutdownErr := app.Shutdown(); shutdownErr != nil {
		logger.Error(shutdownErr)
	}
}

func loggingConfig(cm config.IConfigureManager) logging.Config {
	web := cm.GetWebConfig()
	logCfg := cm.GetLoggingConfig()

	cfg := logging.Config{
		Service: logging.ServiceConfig{
			Env:     web.Env,
			AppName: web.AppName,
			Version: web.Version,
		},
		Level: logCfg.Level,
	}

	if logCfg.LogstashHost != "" {
		cfg.Logstash = &logging.LogstashConfig{
			Host: logCfg.LogstashHost,
			Port: logCfg.LogstashPort,
		}
	}

	if search := cm.GetOpenSearchConfig(); search.Enabled() {
		cfg.OpenSearch = &logging.OpenSearchConfig{
			Addresses: search.Addresses,
			Username:  search.Username,
			Password:  search.Password,
			Index:     search.Index,
		}
	}

	return cfg
}
