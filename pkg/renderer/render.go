package renderer

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/material"
	"github.com/arnholt/sahtrace/pkg/scene"
)

// Config controls a single render pass.
type Config struct {
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Workers         int
	ShowProgress    bool
}

// Render partitions the image into scanlines, hands each to a fixed
// worker pool (grounded on the teacher's Worker/WorkerPool split), and
// blocks until every row has been sampled SamplesPerPixel times. Each
// worker owns a single *rand.Rand seeded from cfg.Seed XORed with a
// multiple of its worker index, so a fixed seed and worker count
// reproduce an identical image regardless of goroutine scheduling — row
// ownership, not sample order, determines the result. Scenes containing
// a hittable.ConstantMedium are the exception: each medium draws from
// its own generator shared by all workers, so their images vary from
// run to run.
func Render(ctx context.Context, sc *scene.Scene, cfg Config, logger *zap.SugaredLogger) (*Image, Stats, error) {
	width, height := sc.Camera.ImageWidth, sc.Camera.ImageHeight
	img := NewImage(width, height)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	var bar *pb.ProgressBar
	if cfg.ShowProgress {
		bar = pb.StartNew(height)
	}

	// Rows are assigned to workers by a fixed y % workers rule, and each
	// worker visits its rows in increasing y order: this keeps the
	// result reproducible for a given (seed, workers) regardless of
	// goroutine scheduling, since no two workers ever touch the same
	// rng stream or row (a ConstantMedium's own generator aside).
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		workerIdx := w
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed ^ int64(uint64(workerIdx)*0x9E3779B97F4A7C15)))
			for y := workerIdx; y < height; y += workers {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				renderRow(sc, img, y, cfg.SamplesPerPixel, cfg.MaxDepth, rng)
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if bar != nil {
			bar.Finish()
		}
		return nil, Stats{}, err
	}
	if bar != nil {
		bar.Finish()
	}

	logger.Infow("render complete",
		"width", width, "height", height,
		"samplesPerPixel", cfg.SamplesPerPixel, "workers", workers)

	stats := Stats{
		TotalPixels:  width * height,
		TotalSamples: int64(width) * int64(height) * int64(cfg.SamplesPerPixel),
		Workers:      workers,
		Width:        width,
		Height:       height,
	}
	return img, stats, nil
}

func renderRow(sc *scene.Scene, img *Image, y, samples, maxDepth int, rng *rand.Rand) {
	width, height := sc.Camera.ImageWidth, sc.Camera.ImageHeight
	background := func(_ core.Ray) core.Vec3 { return sc.Camera.Background }

	for x := 0; x < width; x++ {
		for s := 0; s < samples; s++ {
			u := (float32(x) + float32(rng.Float64())) / float32(width-1)
			v := 1 - (float32(y)+float32(rng.Float64()))/float32(height-1)
			r := sc.Camera.GetRay(u, v, rng)
			c := material.Shade(r, sc.World, background, maxDepth, rng)
			img.AddSample(x, y, c)
		}
	}
}
