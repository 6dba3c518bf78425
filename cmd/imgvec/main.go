package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-sod/imgvec/internal/appenv"
	"github.com/go-sod/imgvec/internal/buildinfo"
	imgvec "github.com/go-sod/imgvec/internal/config"
	"github.com/go-sod/imgvec/internal/logging"
	"github.com/go-sod/imgvec/internal/setup"
	"github.com/go-sod/imgvec/internal/shutdown"
	"github.com/go-sod/imgvec/internal/tracing"
	"github.com/go-sod/imgvec/internal/uploader"
)

const summaryHead = 5

var (
	file    = flag.String("file", "", "path to the image to vectorize (required)")
	version = flag.Bool("version", false, "print build information and exit")
	summary = flag.Bool("summary", false, "log dimensions, magnitude and the first elements of the vector")
)

func main() {
	flag.Parse()

	if *version {
		_, _ = fmt.Fprint(os.Stderr, buildinfo.Graffiti)
		_, _ = fmt.Fprintf(
			os.Stdout,
			"%s: %s, %s\n",
			buildinfo.Info.Name(),
			buildinfo.Info.Time(),
			buildinfo.Info.Tag(),
		)
		return
	}

	if err := checkArgs(*file, flag.Args()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, done := shutdown.New()
	config := imgvec.Config{}
	ctx, env, err := setup.Setup(ctx, &config)
	if err != nil {
		done()
		logging.FromContext(ctx).Fatalf("setup.Setup: %v", err)
	}
	logger := logging.FromContext(ctx)

	err = run(ctx, env, *file, os.Stdout)
	done()
	if err != nil {
		logger.Fatal(err)
	}
	_ = logger.Sync()
}

func checkArgs(path string, rest []string) error {
	if path == "" {
		return errors.New("the following arguments are required: --file")
	}
	if len(rest) > 0 {
		return fmt.Errorf("unrecognized arguments: %s", strings.Join(rest, " "))
	}
	return nil
}

func run(ctx context.Context, env *appenv.Env, path string, out io.Writer) error {
	if env.TracingEnabled() {
		unregister := tracing.Register(ctx)
		defer unregister()
	}

	up, err := env.ProvideUploader()()
	if err != nil {
		return fmt.Errorf("uploader provider function error: %w", err)
	}

	vec, err := up.Upload(ctx, path)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}

	if *summary {
		if err := logSummary(ctx, vec); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, vec.String()); err != nil {
		return fmt.Errorf("write vector: %w", err)
	}
	return nil
}

func logSummary(ctx context.Context, vec uploader.Vector) error {
	points, err := vec.Floats()
	if errors.Is(err, uploader.ErrMalformedVector) {
		logging.FromContext(ctx).Warnf("no summary available: %v", err)
		return nil
	}
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Infow("vector summary",
		"dimensions", points.Dimensions(),
		"magnitude", points.Magnitude(),
		"head", points.Head(summaryHead),
	)
	return nil
}
