package config

import (
	"time"

	"golang.org/x/text/language"
)

const (
	productionEnv = "production"
)

type WebConfig struct {
	AppName string
	Port    string
	Env     string
	Version string
}

type LanguageConfig struct {
	Default   language.Tag
	Languages []language.Tag
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LoggingConfig struct {
	Level        string
	LogstashHost string
	LogstashPort int
}

type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

type CORSConfig struct {
	AllowOrigins string
}

func (w WebConfig) IsProductionEnv() bool {
	return w.Env == productionEnv
}

func (o OpenSearchConfig) Enabled() bool {
	return len(o.Addresses) > 0 && o.Index != ""
}
