package appenv

import (
	"fmt"

	"github.com/go-sod/imgvec/internal/uploader"
)

type Option func(*Env) *Env

func New(opts ...Option) *Env {
	env := &Env{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type Env struct {
	uploader uploader.ProvideFn
	tracing  bool
}

func (e *Env) ProvideUploader() uploader.ProvideFn {
	if e.uploader == nil {
		return func() (uploader.Uploader, error) {
			return nil, fmt.Errorf("uploader is not configured")
		}
	}
	return e.uploader
}

func (e *Env) TracingEnabled() bool {
	return e.tracing
}

func WithUploader(fn uploader.ProvideFn) Option {
	return func(e *Env) *Env {
		e.uploader = fn
		return e
	}
}

func WithTracing(enabled bool) Option {
	return func(e *Env) *Env {
		e.tracing = enabled
		return e
	}
}
