// Package renderer drives the worker-pool Monte Carlo render loop:
// partitioning scanlines across workers, each with its own seeded RNG,
// accumulating samples into a float64 buffer, and handing the result to
// pkg/imageio for encoding.
package renderer

import "github.com/arnholt/sahtrace/pkg/core"

// Image is a linear-color floating-point accumulation buffer. Sample
// sums are kept in float64 even though every geometric computation is
// float32, so that averaging thousands of per-pixel samples doesn't
// accumulate visible float32 rounding error; pkg/imageio narrows the
// final average to float32/uint8 when it encodes.
type Image struct {
	Width, Height int
	sum           []colorSum
}

type colorSum struct {
	r, g, b float64
	n       int
}

func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, sum: make([]colorSum, width*height)}
}

func (img *Image) index(x, y int) int { return y*img.Width + x }

// AddSample accumulates one Monte Carlo sample's color at pixel (x,y).
func (img *Image) AddSample(x, y int, c core.Vec3) {
	i := img.index(x, y)
	s := &img.sum[i]
	s.r += float64(c.X)
	s.g += float64(c.Y)
	s.b += float64(c.Z)
	s.n++
}

// Average returns the mean accumulated color at (x,y).
func (img *Image) Average(x, y int) core.Vec3 {
	s := img.sum[img.index(x, y)]
	if s.n == 0 {
		return core.Vec3{}
	}
	n := float64(s.n)
	return core.NewVec3(float32(s.r/n), float32(s.g/n), float32(s.b/n))
}
