package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-sod/imgvec/internal/byteutil"
	"github.com/go-sod/imgvec/internal/httputil"
	"github.com/go-sod/imgvec/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultEndpoint = "http://localhost:8080/vectors"

	// maxErrBodyLen caps how much of an error response ends up in the error message.
	maxErrBodyLen = 512
)

type Uploader interface {
	Upload(ctx context.Context, path string) (Vector, error)
}

type ProvideFn = func() (Uploader, error)

type Options struct {
	endpoint    string
	id          string
	maxFileSize int64
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.opts.endpoint = endpoint
	}
}

func WithID(id string) Option {
	return func(c *Client) {
		c.opts.id = id
	}
}

// WithMaxFileSize rejects images larger than n bytes. Zero disables the check.
func WithMaxFileSize(n int64) Option {
	return func(c *Client) {
		c.opts.maxFileSize = n
	}
}

var _ Uploader = (*Client)(nil)

func New(client *http.Client, opts ...Option) (*Client, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is not defined")
	}
	c := &Client{
		client: client,
		opts: Options{
			endpoint: DefaultEndpoint,
			id:       DefaultID,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.opts.endpoint == "" {
		return nil, fmt.Errorf("endpoint is not defined")
	}
	if c.opts.maxFileSize < 0 {
		return nil, fmt.Errorf("max file size must not be negative: %d", c.opts.maxFileSize)
	}
	return c, nil
}

type Client struct {
	client *http.Client
	opts   Options
}

// Upload sends the image at path to the vectors endpoint and returns the
// value of the "vector" key of the response.
func (c *Client) Upload(ctx context.Context, path string) (Vector, error) {
	logger := logging.FromContext(ctx)

	data, err := c.readImage(path)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(NewRequest(c.opts.id, data))
	if err != nil {
		return nil, fmt.Errorf("unable encode upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create new request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(httputil.RequestIDHeader, requestID)

	logger.Debugw("uploading image",
		"path", path,
		"bytes", len(data),
		"sha256", byteutil.Digest(data),
		"endpoint", c.opts.endpoint,
		"requestId", requestID,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, truncate(respBody, maxErrBodyLen))
	}

	vec, err := decodeVector(respBody)
	if err != nil {
		return nil, err
	}

	logger.Debugw("received vector", "requestId", requestID, "status", resp.StatusCode)
	return vec, nil
}

func (c *Client) readImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	if c.opts.maxFileSize > 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
		}
		if info.Size() > c.opts.maxFileSize {
			return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileAccess, path, info.Size(), c.opts.maxFileSize)
		}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	return data, nil
}

func decodeVector(body []byte) (Vector, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, httputil.DescribeDecodeErr(err))
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is not a json object", ErrMalformedResponse)
	}
	raw, ok := fields["vector"]
	if !ok {
		return nil, ErrMissingVector
	}
	return Vector(raw), nil
}

func truncate(b []byte, n int) string {
	b = bytes.TrimSpace(b)
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
