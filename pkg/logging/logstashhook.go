package logging

import (
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
)

type LogstashConfig struct {
	Host string
	Port int
}

// LogstashHook ships entries as JSON datagrams.
type LogstashHook struct {
	conn net.Conn
}

func NewLogstashHook(config LogstashConfig) (*LogstashHook, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(config.Host, fmt.Sprint(config.Port)))
	if err != nil {
		return nil, fmt.Errorf("failed to dial logstash: %w", err)
	}

	return &LogstashHook{conn: conn}, nil
}

func (h *LogstashHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogstashHook) Fire(entry *logrus.Entry) error {
	data, err := marshalEntry(entry, "@timestamp")
	if err != nil {
		return err
	}

	if _, err := h.conn.Write(data); err != nil {
		return fmt.Errorf("failed to send log via udp: %w", err)
	}

	return nil
}

func (h *LogstashHook) Close() error {
	return h.conn.Close()
}
