package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tensorcube/tensorcube-web/internal/dto/resource"
	"github.com/tensorcube/tensorcube-web/pkg/constants"
	"github.com/tensorcube/tensorcube-web/pkg/envelope"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
)

type APIClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// APIClient issues single requests against the tensorcube API. It is safe
// for concurrent use.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewAPIClient(l *logrus.Logger, cfg APIClientConfig) *APIClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &APIClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     l,
	}
}

type apiRequest struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	// bearer is sent as Authorization unless anonymous is set
	bearer    string
	anonymous bool
}

func jsonRequest(method, path string, query url.Values, body interface{}) (apiRequest, error) {
	req := apiRequest{method: method, path: path, query: query}
	if body == nil {
		return req, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return req, fmt.Errorf("%s: %w", constants.ErrEncodeRequest, err)
	}
	req.body = data
	req.contentType = utils.JSONMediaType

	return req, nil
}

func (c *APIClient) url(path string, query url.Values) string {
	u := fmt.Sprintf("%s/%s", c.baseURL, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

func (c *APIClient) do(ctx context.Context, req apiRequest) (*http.Response, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	r, err := http.NewRequestWithContext(ctx, req.method, c.url(req.path, req.query), body)
	if err != nil {
		c.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrBuildRequest)
		return nil, err
	}

	if !req.anonymous {
		r.Header.Add(utils.AuthorizationHeaderKey, fmt.Sprintf("%s %s", utils.BearerAuthType, req.bearer))
		r.Header.Add(utils.AcceptHeaderKey, utils.JSONMediaType)
	}
	if req.contentType != "" {
		r.Header.Add(utils.ContentTypeHeaderKey, req.contentType)
	}

	resp, err := c.httpClient.Do(r)
	if err != nil {
		c.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrSendRequest)
		return nil, err
	}

	return resp, nil
}

func (c *APIClient) logStatus(req apiRequest, status int) {
	fields := req.fields()
	fields["status_code"] = status
	c.logger.WithFields(fields).Warn(constants.ErrRequestStatus)
}

func (r apiRequest) fields() logrus.Fields {
	return logrus.Fields{
		"method": r.method,
		"path":   r.path,
	}
}

// fetchJSON runs req and decodes a 200 body into T. An empty 200 body leaves
// T at its zero value.
func fetchJSON[T any](ctx context.Context, c *APIClient, req apiRequest) envelope.Envelope[T] {
	resp, err := c.do(ctx, req)
	if err != nil {
		return envelope.TransportFailure[T]()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logStatus(req, resp.StatusCode)
		return envelope.Failure[T](resp.StatusCode)
	}

	data, err := decodeBody[T](resp.Body)
	if err != nil {
		c.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrDecodeResponse)
		return envelope.TransportFailure[T]()
	}

	return envelope.Success(data)
}

// fetchAck runs req and reports success without data.
func fetchAck(ctx context.Context, c *APIClient, req apiRequest) envelope.Envelope[struct{}] {
	resp, err := c.do(ctx, req)
	if err != nil {
		return envelope.TransportFailure[struct{}]()
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logStatus(req, resp.StatusCode)
		return envelope.Failure[struct{}](resp.StatusCode)
	}

	return envelope.Acknowledged[struct{}](http.StatusOK, envelope.SuccessMsg)
}

// fetchFile runs req and keeps the raw body together with the filename (and,
// when withContentType is set, the media type) announced in the headers.
func fetchFile(ctx context.Context, c *APIClient, req apiRequest, withContentType bool) envelope.Envelope[resource.DataPairFile] {
	resp, err := c.do(ctx, req)
	if err != nil {
		return envelope.TransportFailure[resource.DataPairFile]()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logStatus(req, resp.StatusCode)
		return envelope.Failure[resource.DataPairFile](resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).WithFields(req.fields()).Error(constants.ErrReadResponse)
		return envelope.TransportFailure[resource.DataPairFile]()
	}

	file := resource.DataPairFile{
		Filename: resp.Header.Get(constants.FilenameHeader),
		File:     body,
	}
	if withContentType {
		file.ContentType = resp.Header.Get(constants.ContentTypeHeader)
	}

	return envelope.Success(file)
}

func decodeBody[T any](r io.Reader) (T, error) {
	var data T

	body, err := io.ReadAll(r)
	if err != nil {
		return data, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return data, nil
	}

	err = json.Unmarshal(body, &data)

	return data, err
}

// detailMessage pulls FastAPI's {"detail": "..."} out of an error body.
func detailMessage(body io.Reader) string {
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}

	if detail, ok := payload.Detail.(string); ok {
		return detail
	}

	return ""
}
