package logging

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
	"github.com/sirupsen/logrus"
)

type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Insecure  bool
}

type OpenSearchHook struct {
	client *opensearch.Client
	index  string
	now    func() time.Time
}

func NewOpenSearchClient(config OpenSearchConfig) (*opensearch.Client, error) {
	cfg := opensearch.Config{
		Addresses: config.Addresses,
		Username:  config.Username,
		Password:  config.Password,
	}
	if config.Insecure {
		cfg.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}

	return opensearch.NewClient(cfg)
}

func NewOpenSearchHook(client *opensearch.Client, index string) *OpenSearchHook {
	return &OpenSearchHook{
		client: client,
		index:  index,
		now:    time.Now,
	}
}

func (h *OpenSearchHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

// Daily index: <index>-YYYY-MM-DD.
func (h *OpenSearchHook) indexName() string {
	return fmt.Sprintf("%s-%s", h.index, h.now().Format("2006-01-02"))
}

func (h *OpenSearchHook) Fire(entry *logrus.Entry) error {
	data, err := marshalEntry(entry, "timestamp")
	if err != nil {
		return err
	}

	var opts []func(*opensearchapi.IndexRequest)
	if entry.Context != nil {
		opts = append(opts, h.client.Index.WithContext(entry.Context))
	}

	resp, err := h.client.Index(h.indexName(), bytes.NewReader(data), opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("opensearch index failed: %s", resp.Status())
	}

	return nil
}
