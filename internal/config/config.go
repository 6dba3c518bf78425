package config

import (
	"time"

	"github.com/go-sod/imgvec/internal/httputil"
	"github.com/go-sod/imgvec/internal/setup"
	"github.com/go-sod/imgvec/internal/uploader"
)

var (
	_ setup.UploaderConfigProvider = (*Config)(nil)
	_ setup.HTTPConfigProvider     = (*Config)(nil)
	_ setup.LoggingConfigProvider  = (*Config)(nil)
)

type Config struct {
	Uploader UploaderConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

type UploaderConfig struct {
	Endpoint    string `envconfig:"IMGVEC_ENDPOINT" default:"http://localhost:8080/vectors"`
	ID          string `envconfig:"IMGVEC_ID" default:"test"`
	MaxFileSize int64  `envconfig:"IMGVEC_MAX_FILE_SIZE" default:"0"`
}

type HTTPConfig struct {
	RequestTimeout    time.Duration `envconfig:"IMGVEC_REQUEST_TIMEOUT" default:"0s"`
	BearerToken       string        `envconfig:"IMGVEC_BEARER_TOKEN"`
	BasicAuthUsername string        `envconfig:"IMGVEC_BASIC_AUTH_USERNAME"`
	BasicAuthPassword string        `envconfig:"IMGVEC_BASIC_AUTH_PASSWORD"`
	Trace             bool          `envconfig:"IMGVEC_TRACE" default:"false"`
}

type LogConfig struct {
	Level       string `envconfig:"IMGVEC_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"IMGVEC_LOG_DEV" default:"false"`
}

func (c *Config) UploaderOptions() []uploader.Option {
	return []uploader.Option{
		uploader.WithEndpoint(c.Uploader.Endpoint),
		uploader.WithID(c.Uploader.ID),
		uploader.WithMaxFileSize(c.Uploader.MaxFileSize),
	}
}

func (c *Config) HTTPClientConfig() httputil.ClientConfig {
	cfg := httputil.ClientConfig{
		BearerToken: c.HTTP.BearerToken,
		Timeout:     c.HTTP.RequestTimeout,
		Trace:       c.HTTP.Trace,
	}
	if c.HTTP.BasicAuthUsername != "" || c.HTTP.BasicAuthPassword != "" {
		cfg.BasicAuth = &httputil.BasicAuth{
			Username: c.HTTP.BasicAuthUsername,
			Password: c.HTTP.BasicAuthPassword,
		}
	}
	return cfg
}

func (c *Config) LogLevel() string {
	return c.Log.Level
}

func (c *Config) LogDevelopment() bool {
	return c.Log.Development
}
