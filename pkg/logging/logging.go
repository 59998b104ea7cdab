package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	fieldKeyMsg     = "message"
	fieldKeyTime    = "timestamp"
	timestampFormat = "2006-01-02 15:04:05"
)

type Config struct {
	Service    ServiceConfig
	Level      string
	Output     io.Writer
	Logstash   *LogstashConfig
	OpenSearch *OpenSearchConfig
}

func NewLogger(config Config) *logrus.Logger {
	logger := logrus.New()

	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetReportCaller(true)
	logger.SetFormatter(jsonFormatter())

	logger.AddHook(NewServiceHook(config.Service))

	if config.Logstash != nil && config.Logstash.Host != "" && config.Logstash.Port > 0 {
		hook, err := NewLogstashHook(*config.Logstash)
		if err != nil {
			fmt.Fprintf(out, "failed to connect to logstash: %v, keeping console output\n", err)
		} else {
			logger.SetOutput(io.Discard)
			logger.AddHook(hook)
		}
	}

	if config.OpenSearch != nil && len(config.OpenSearch.Addresses) > 0 {
		client, err := NewOpenSearchClient(*config.OpenSearch)
		if err != nil {
			fmt.Fprintf(out, "failed to create opensearch client: %v\n", err)
		} else {
			logger.AddHook(NewOpenSearchHook(client, config.OpenSearch.Index))
		}
	}

	return logger
}

// NewNullLogger discards everything; used by tests and tooling.
func NewNullLogger() *logrus.Logger {
	return NewLogger(Config{Output: io.Discard, Level: logrus.PanicLevel.String()})
}

func jsonFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg:  fieldKeyMsg,
			logrus.FieldKeyTime: fieldKeyTime,
		},
		TimestampFormat: timestampFormat,
	}
}
