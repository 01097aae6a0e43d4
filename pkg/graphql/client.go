package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dashxhq/dashx-go/pkg/config"
	"github.com/dashxhq/dashx-go/pkg/dashxerr"
)

const (
	// maxErrorBody bounds how much of a non-GraphQL error body is kept.
	maxErrorBody = 1 << 10
	// MaxResponseBody is the largest response body the client reads.
	MaxResponseBody = 32 << 20
)

// Request is the JSON body of every GraphQL call.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// Response is a decoded GraphQL response. Data keeps each top-level field raw
// so callers decode straight into their own types.
type Response struct {
	Data       map[string]json.RawMessage `json:"data"`
	Errors     []ErrorDetail              `json:"errors,omitempty"`
	Extensions map[string]any             `json:"extensions,omitempty"`
}

// Extract decodes data.<field> into out. A missing or null field leaves out
// untouched and returns nil.
func (r *Response) Extract(field string, out any) error {
	if r == nil || r.Data == nil {
		return nil
	}
	raw, ok := r.Data[field]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %q: %w", field, err)
	}
	return nil
}

// Client posts GraphQL documents to a single endpoint. It is safe for
// concurrent use.
type Client struct {
	endpoint string
	headers  http.Header
	debug    bool

	http      *http.Client
	transport *http.Transport
	maxBody   int64

	closeOnce sync.Once
}

// NewClient validates cfg and builds a client over a pooled transport sized
// from cfg.MaxConnections and cfg.Timeouts.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialer := &net.Dialer{
		Timeout:   cfg.Timeouts.Connect,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          cfg.MaxConnections,
		MaxIdleConnsPerHost:   cfg.MaxConnections,
		MaxConnsPerHost:       cfg.MaxConnections,
		IdleConnTimeout:       cfg.Timeouts.IdleConn,
		ResponseHeaderTimeout: cfg.Timeouts.Response,
		TLSHandshakeTimeout:   cfg.Timeouts.Connect,
		ForceAttemptHTTP2:     true,
	}

	h := make(http.Header)
	h.Set(ContentTypeHeader, ContentTypeJSON)
	h.Set("Accept", ContentTypeJSON)
	if cfg.PublicKey != "" {
		h.Set(PublicKeyHeader, cfg.PublicKey)
	}
	if cfg.PrivateKey != "" {
		h.Set(PrivateKeyHeader, cfg.PrivateKey)
	}
	if cfg.TargetEnvironment != "" {
		h.Set(TargetEnvironmentHeader, cfg.TargetEnvironment)
	}

	return &Client{
		endpoint:  cfg.BaseURL,
		headers:   h,
		debug:     cfg.Debug,
		http:      &http.Client{Transport: tr},
		transport: tr,
		maxBody:   MaxResponseBody,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.endpoint
}

// HTTPClient exposes the pooled client so signed-URL uploads share the same
// connection limits.
func (c *Client) HTTPClient() *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c.http
}

// Execute posts query with variables and returns the decoded response. A
// non-empty "errors" list is returned as *Error wrapped in a dashxerr.Error of
// kind graphql.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	return c.Do(ctx, Request{Query: query, Variables: variables})
}

// Do is Execute with an explicit Request, for callers that set OperationName.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	const op = "graphql.execute"

	if c == nil || c.http == nil {
		return nil, dashxerr.Configuration(op, "graphql client is not initialized")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindValidation, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, err)
	}
	for k, v := range c.headers {
		httpReq.Header[k] = v
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zap.L().Debug("failed to close graphql response body", zap.Error(err))
		}
	}(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, fmt.Errorf("read response: %w", err))
	}
	if int64(len(raw)) > c.maxBody {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport,
			fmt.Errorf("response body exceeds %d bytes (status %d)", c.maxBody, resp.StatusCode))
	}

	if c.debug {
		zap.L().Debug("graphql request",
			zap.String("endpoint", c.endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Duration("took", time.Since(start)),
			zap.Int("bytes", len(raw)),
		)
	}

	var out Response
	decodeErr := json.Unmarshal(raw, &out)

	if len(out.Errors) > 0 {
		return &out, dashxerr.Wrap(op, dashxerr.KindGraphQL, &Error{Errors: out.Errors})
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)})
	}
	if decodeErr != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, fmt.Errorf("decode response: %w", decodeErr))
	}
	return &out, nil
}

// Close releases idle pooled connections. It is safe on a nil or already
// closed client.
func (c *Client) Close() {
	if c == nil || c.transport == nil {
		return
	}
	c.closeOnce.Do(c.transport.CloseIdleConnections)
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr, true
	}
	return nil, false
}
