package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/imgvec/internal/appenv"
	"github.com/go-sod/imgvec/internal/buildinfo"
	"github.com/go-sod/imgvec/internal/httputil"
	"github.com/go-sod/imgvec/internal/logging"
	"github.com/go-sod/imgvec/internal/uploader"
	"github.com/kelseyhightower/envconfig"
)

type LoggingConfigProvider interface {
	LogLevel() string
	LogDevelopment() bool
}

type HTTPConfigProvider interface {
	HTTPClientConfig() httputil.ClientConfig
}

type UploaderConfigProvider interface {
	UploaderOptions() []uploader.Option
}

// Setup loads config from the environment and returns the wired environment
// together with a context carrying the configured logger.
func Setup(ctx context.Context, config interface{}) (context.Context, *appenv.Env, error) {
	if err := envconfig.Process("", config); err != nil {
		return ctx, nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if logConfigProvider, ok := config.(LoggingConfigProvider); ok {
		logger := logging.NewLogger(logConfigProvider.LogLevel(), logConfigProvider.LogDevelopment())
		ctx = logging.WithLogger(ctx, logger)
	}
	logger := logging.FromContext(ctx)

	var envOpts []appenv.Option
	clientCfg := httputil.ClientConfig{}
	if httpConfigProvider, ok := config.(HTTPConfigProvider); ok {
		logger.Debug("Configuring http client")
		clientCfg = httpConfigProvider.HTTPClientConfig()
	}
	clientCfg.UserAgent = buildinfo.UserAgent()
	envOpts = append(envOpts, appenv.WithTracing(clientCfg.Trace))

	if uploaderConfigProvider, ok := config.(UploaderConfigProvider); ok {
		logger.Debug("Configuring uploader")
		provideFn, err := ProvideUploaderFor(uploaderConfigProvider, clientCfg)
		if err != nil {
			return ctx, nil, fmt.Errorf("unable create uploader provide function: %w", err)
		}
		envOpts = append(envOpts, appenv.WithUploader(provideFn))
	}

	return ctx, appenv.New(envOpts...), nil
}

func ProvideUploaderFor(provider UploaderConfigProvider, clientCfg httputil.ClientConfig) (uploader.ProvideFn, error) {
	if err := clientCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid http config: %w", err)
	}
	opts := provider.UploaderOptions()
	return func() (uploader.Uploader, error) {
		client, err := httputil.NewClientFromConfig(clientCfg)
		if err != nil {
			return nil, fmt.Errorf("unable create http client: %w", err)
		}
		return uploader.New(client, opts...)
	}, nil
}
