// Command sahtrace renders one of a fixed set of built-in scenes with a
// SAH-BVH-accelerated Monte Carlo path tracer and writes the result to
// an image file.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arnholt/sahtrace/pkg/imageio"
	"github.com/arnholt/sahtrace/pkg/renderer"
	"github.com/arnholt/sahtrace/pkg/scene"
)

// exit codes, per the CLI's error-handling contract: 0 success, 2 a
// usage/argument validation failure caught before any rendering begins,
// 1 a failure during rendering or image output.
const (
	exitOK          = 0
	exitUsageError  = 2
	exitRuntimeFail = 1
)

type options struct {
	output   string
	width    int
	samples  int
	bounces  int
	sceneStr string
	seed     int64
	verbose  int
	quiet    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := &options{}
	usageErr := false

	root := &cobra.Command{
		Use:           "sahtrace",
		Short:         "A SAH-BVH accelerated Monte Carlo path tracer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate(opts); err != nil {
				usageErr = true
				return err
			}
			return renderMain(cmd, opts)
		},
	}

	root.Flags().StringVarP(&opts.output, "output", "o", "output.png", "output image path")
	root.Flags().IntVarP(&opts.width, "width", "w", 1200, "image width in pixels")
	root.Flags().IntVarP(&opts.samples, "samples", "n", 100, "samples per pixel")
	root.Flags().IntVarP(&opts.bounces, "bounces", "b", 50, "max light-contribution bounces")
	root.Flags().StringVarP(&opts.sceneStr, "scene", "s", string(scene.CoverPhoto),
		fmt.Sprintf("scene to render (%s)", strings.Join(sceneNames(), ", ")))
	root.Flags().Int64Var(&opts.seed, "seed", 0, "RNG seed (defaults to a time-derived seed)")
	root.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase logging verbosity")
	root.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all but error output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		usageErr = true
		return err
	})
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sahtrace:", err)
		if usageErr {
			return exitUsageError
		}
		return exitRuntimeFail
	}
	return exitOK
}

// validate performs the pre-flight argument checks the CLI must reject
// before any rendering work begins: non-positive counts and an
// unrecognized scene name or output extension.
func validate(opts *options) error {
	if opts.width <= 0 {
		return fmt.Errorf("--width must be greater than 0")
	}
	if opts.samples <= 0 {
		return fmt.Errorf("--samples must be greater than 0")
	}
	if opts.bounces <= 0 {
		return fmt.Errorf("--bounces must be greater than 0")
	}
	if !scene.Type(opts.sceneStr).Valid() {
		return fmt.Errorf("--scene %q is not one of: %s", opts.sceneStr, strings.Join(sceneNames(), ", "))
	}
	if !imageio.SupportedExt(opts.output) {
		return fmt.Errorf("--output %q has an unrecognized image extension", opts.output)
	}
	return nil
}

func sceneNames() []string {
	names := make([]string, len(scene.All))
	for i, s := range scene.All {
		names[i] = string(s)
	}
	return names
}

func renderMain(cmd *cobra.Command, opts *options) error {
	logger := newLogger(opts)
	defer logger.Sync()
	scene.Logger = logger

	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	sc, err := scene.Build(scene.Type(opts.sceneStr), opts.width, rng)
	if err != nil {
		return err
	}

	logger.Infow("rendering", "scene", opts.sceneStr, "width", opts.width,
		"samples", opts.samples, "bounces", opts.bounces, "seed", seed)

	img, stats, err := renderer.Render(cmd.Context(), sc, renderer.Config{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.bounces,
		Seed:            seed,
		ShowProgress:    !opts.quiet,
	}, logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := imageio.Write(opts.output, img); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}

	logger.Infow("done", "output", opts.output, "totalSamples", stats.TotalSamples)
	return nil
}

func newLogger(opts *options) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	switch {
	case opts.quiet:
		level = zapcore.ErrorLevel
	case opts.verbose >= 1:
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = ""
	logger, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than crash the CLI over a
		// logging misconfiguration.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
