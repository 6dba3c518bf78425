package httputil

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opencensus.io/plugin/ochttp"
)

const RequestIDHeader = "X-Request-Id"

// newClient returns a http.Client using the specified http.RoundTripper.
func newClient(rt http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{Transport: rt, Timeout: timeout}
}

func NewClientFromConfig(cfg ClientConfig) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid http client config: %w", err)
	}
	rt, err := NewRoundTripperFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(rt, cfg.Timeout), nil
}

// NewRoundTripperFromConfig returns a new HTTP RoundTripper configured for the
// given ClientConfig.
func NewRoundTripperFromConfig(cfg ClientConfig) (http.RoundTripper, error) {
	var rt http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   1,
		IdleConnTimeout:       time.Minute,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if cfg.Trace {
		rt = &ochttp.Transport{Base: rt}
	}

	// If a bearer token is provided, create a round tripper that will set the
	// Authorization header correctly on each request.
	if len(cfg.BearerToken) > 0 {
		rt = NewBearerAuthRoundTripper(cfg.BearerToken, rt)
	}

	if cfg.BasicAuth != nil {
		rt = NewBasicAuthRoundTripper(cfg.BasicAuth.Username, cfg.BasicAuth.Password, rt)
	}

	if len(cfg.UserAgent) > 0 {
		rt = NewHeaderRoundTripper("User-Agent", cfg.UserAgent, rt)
	}

	return NewRequestIDRoundTripper(rt), nil
}

type bearerAuthRoundTripper struct {
	bearerToken string
	rt          http.RoundTripper
}

// NewBearerAuthRoundTripper adds the provided bearer token to a request unless the authorization
// header has already been set.
func NewBearerAuthRoundTripper(token string, rt http.RoundTripper) http.RoundTripper {
	return &bearerAuthRoundTripper{token, rt}
}

func (rt *bearerAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get("Authorization")) == 0 {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", rt.bearerToken))
	}
	return rt.rt.RoundTrip(req)
}

type basicAuthRoundTripper struct {
	username string
	password string
	rt       http.RoundTripper
}

// NewBasicAuthRoundTripper will apply a BASIC auth authorization header to a request unless it has
// already been set.
func NewBasicAuthRoundTripper(username string, password string, rt http.RoundTripper) http.RoundTripper {
	return &basicAuthRoundTripper{username, password, rt}
}

func (rt *basicAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get("Authorization")) != 0 {
		return rt.rt.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.SetBasicAuth(rt.username, strings.TrimSpace(rt.password))
	return rt.rt.RoundTrip(req)
}

type headerRoundTripper struct {
	key   string
	value string
	rt    http.RoundTripper
}

// NewHeaderRoundTripper sets a fixed header on every request that does not carry it yet.
func NewHeaderRoundTripper(key, value string, rt http.RoundTripper) http.RoundTripper {
	return &headerRoundTripper{key: key, value: value, rt: rt}
}

func (rt *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get(rt.key)) == 0 {
		req = req.Clone(req.Context())
		req.Header.Set(rt.key, rt.value)
	}
	return rt.rt.RoundTrip(req)
}

type requestIDRoundTripper struct {
	rt http.RoundTripper
}

// NewRequestIDRoundTripper tags each request with a fresh random X-Request-Id
// unless the caller already set one.
func NewRequestIDRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return &requestIDRoundTripper{rt: rt}
}

func (rt *requestIDRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(req.Header.Get(RequestIDHeader)) == 0 {
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, uuid.New().String())
	}
	return rt.rt.RoundTrip(req)
}
