// Package camera constructs depth-of-field, motion-blur-capable camera
// rays from a declarative Config, the way scene builders describe a
// viewpoint without touching the underlying basis-vector math.
package camera

import (
	"math"
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Config is the declarative camera description a scene builder fills
// in; Merge lets a scene start from a package-level default and override
// only the fields it cares about.
type Config struct {
	Center        core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	Width         int
	AspectRatio   float32
	VFov          float32
	Aperture      float32
	FocusDistance float32
	ShutterOpen   float32
	ShutterClose  float32
	Background    core.Vec3
}

// Merge returns a copy of base with every non-zero-value field of
// override applied on top, the same override-merge convention the
// scene builders use to share a set of sensible defaults.
func Merge(base, override Config) Config {
	merged := base
	if override.Center != (core.Vec3{}) {
		merged.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	if override.ShutterClose != 0 {
		merged.ShutterOpen = override.ShutterOpen
		merged.ShutterClose = override.ShutterClose
	}
	if override.Background != (core.Vec3{}) {
		merged.Background = override.Background
	}
	return merged
}

// Camera holds the precomputed viewport basis used to generate rays.
type Camera struct {
	origin, llCorner, horizontal, vertical core.Vec3
	u, v                                   core.Vec3
	lensRadius                             float32
	shutterOpen, shutterClose              float32
	Background                             core.Vec3
	ImageWidth, ImageHeight                int
}

// New builds the orthonormal basis (u,v,w) from LookAt/Up, sizes the
// viewport from the vertical FOV and focus distance, and derives the
// lens radius from the aperture.
func New(cfg Config) *Camera {
	height := int(float32(cfg.Width) / cfg.AspectRatio)
	if height < 1 {
		height = 1
	}

	focusDist := cfg.FocusDistance
	if focusDist == 0 {
		focusDist = cfg.Center.Sub(cfg.LookAt).Length()
	}

	theta := float64(cfg.VFov) * math.Pi / 180
	viewportHeight := 2 * float32(math.Tan(theta/2))
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.Center.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth * focusDist)
	vertical := v.Mul(viewportHeight * focusDist)
	llCorner := cfg.Center.Sub(horizontal.Div(2)).Sub(vertical.Div(2)).Sub(w.Mul(focusDist))

	shutterOpen, shutterClose := cfg.ShutterOpen, cfg.ShutterClose
	if shutterClose == 0 {
		shutterClose = shutterOpen
	}

	return &Camera{
		origin:       cfg.Center,
		llCorner:     llCorner,
		horizontal:   horizontal,
		vertical:     vertical,
		u:            u,
		v:            v,
		lensRadius:   cfg.Aperture / 2,
		shutterOpen:  shutterOpen,
		shutterClose: shutterClose,
		Background:   cfg.Background,
		ImageWidth:   cfg.Width,
		ImageHeight:  height,
	}
}

// GetRay returns a ray through viewport coordinates (s,t) in [0,1]^2,
// jittered across the lens for depth of field and across the shutter
// window for motion blur.
func (c *Camera) GetRay(s, t float32, rng *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	direction := c.llCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t)).Sub(c.origin).Sub(offset)
	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time = c.shutterOpen + float32(rng.Float64())*(c.shutterClose-c.shutterOpen)
	}
	return core.NewRay(c.origin.Add(offset), direction, time)
}
