package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	EnvironmentTypeLocal = "local"

	defaultBaseURL = "https://api.tensorcube.net"
	defaultPort    = "8080"
	defaultAppName = "tensorcube-web"
)

var GlobalConfig IConfigureManager

type IConfigureManager interface {
	GetWebConfig() WebConfig
	GetLanguageConfig() LanguageConfig
	GetAPIConfig() APIConfig
	GetLoggingConfig() LoggingConfig
	GetOpenSearchConfig() OpenSearchConfig
	GetCORSConfig() CORSConfig
}

type configureManager struct {
	Web        WebConfig
	Language   LanguageConfig
	API        APIConfig
	Logging    LoggingConfig
	OpenSearch OpenSearchConfig
	CORS       CORSConfig
}

func NewConfigureManager() IConfigureManager {
	configPath := "./"

	if os.Getenv("GO_VAULT_PATH") != "" {
		configPath = os.Getenv("GO_VAULT_PATH")
	}

	v := viper.New()
	v.SetConfigFile(fmt.Sprintf("%sconfig-%s.json", configPath, os.Getenv("golang_env")))
	v.SetConfigType("json")
	v.AutomaticEnv()
	setDefaults(v)

	_ = v.ReadInConfig()

	GlobalConfig = newConfigureManager(v)

	return GlobalConfig
}

func newConfigureManager(v *viper.Viper) *configureManager {
	return &configureManager{
		Web:        loadWebConfig(v),
		Language:   loadLanguageConfig(v),
		API:        loadAPIConfig(v),
		Logging:    loadLoggingConfig(v),
		OpenSearch: loadOpenSearchConfig(v),
		CORS:       loadCORSConfig(v),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", defaultAppName)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("ENV", EnvironmentTypeLocal)
	v.SetDefault("API_BASE_URL", defaultBaseURL)
	v.SetDefault("API_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LANGUAGES", "en,ko")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

func loadWebConfig(v *viper.Viper) WebConfig {
	return WebConfig{
		AppName: v.GetString("APP_NAME"),
		Port:    v.GetString("PORT"),
		Env:     v.GetString("ENV"),
		Version: v.GetString("VERSION"),
	}
}

// The first entry of LANGUAGES is the default; unparsable tags are skipped.
func loadLanguageConfig(v *viper.Viper) LanguageConfig {
	var tags []language.Tag
	for _, raw := range splitList(v.GetString("LANGUAGES")) {
		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	return LanguageConfig{
		Default:   tags[0],
		Languages: tags,
	}
}

func loadAPIConfig(v *viper.Viper) APIConfig {
	return APIConfig{
		BaseURL: strings.TrimSuffix(v.GetString("API_BASE_URL"), "/"),
		Timeout: v.GetDuration("API_TIMEOUT"),
	}
}

func loadLoggingConfig(v *viper.Viper) LoggingConfig {
	return LoggingConfig{
		Level:        v.GetString("LOG_LEVEL"),
		LogstashHost: v.GetString("LOGSTASH_HOST"),
		LogstashPort: v.GetInt("LOGSTASH_PORT"),
	}
}

func loadOpenSearchConfig(v *viper.Viper) OpenSearchConfig {
	return OpenSearchConfig{
		Addresses: splitList(v.GetString("OPENSEARCH_ADDRESSES")),
		Username:  v.GetString("OPENSEARCH_USERNAME"),
		Password:  v.GetString("OPENSEARCH_PASSWORD"),
		Index:     v.GetString("OPENSEARCH_INDEX"),
	}
}

func loadCORSConfig(v *viper.Viper) CORSConfig {
	return CORSConfig{
		AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

func (c *configureManager) GetWebConfig() WebConfig {
	return c.Web
}

func (c *configureManager) GetLanguageConfig() LanguageConfig {
	return c.Language
}

func (c *configureManager) GetAPIConfig() APIConfig {
	return c.API
}

func (c *configureManager) GetLoggingConfig() LoggingConfig {
	return c.Logging
}

func (c *configureManager) GetOpenSearchConfig() OpenSearchConfig {
	return c.OpenSearch
}

func (c *configureManager) GetCORSConfig() CORSConfig {
	return c.CORS
}
