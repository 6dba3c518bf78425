package httputil

import (
	"errors"
	"time"
)

type ClientConfig struct {
	BasicAuth   *BasicAuth
	BearerToken string
	UserAgent   string
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	Trace   bool
}

func (c *ClientConfig) Validate() error {
	if c.BasicAuth != nil && len(c.BearerToken) > 0 {
		return errors.New("at most one of basic_auth & bearer_token must be configured")
	}
	if c.BasicAuth != nil && c.BasicAuth.Username == "" {
		return errors.New("basic_auth requires a username")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

type BasicAuth struct {
	Username string
	Password string
}
