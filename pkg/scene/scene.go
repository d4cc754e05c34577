// Package scene enumerates the fixed set of built-in scenes the CLI can
// render and builds the camera and geometry for each one.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/bvh"
	"github.com/arnholt/sahtrace/pkg/camera"
	"github.com/arnholt/sahtrace/pkg/core"
)

// Type names one of the closed set of built-in scenes.
type Type string

const (
	MaterialDev      Type = "material-dev"
	CoverPhoto       Type = "cover-photo"
	TwoSpheres       Type = "two-spheres"
	TwoPerlinSpheres Type = "two-perlin-spheres"
	Earth            Type = "earth"
	SimpleLight      Type = "simple-light"
	CornellBox       Type = "cornell-box"
	CornellBox2      Type = "cornell-box-2"
	RandomLights     Type = "random-lights"
	FinalScene       Type = "final-scene"
	DebugCornell     Type = "debug-cornell"
	DebugFinal       Type = "debug-final"
)

// All lists every built-in scene name, in the order the CLI help text
// presents them.
var All = []Type{
	MaterialDev, CoverPhoto, TwoSpheres, TwoPerlinSpheres, Earth, SimpleLight,
	CornellBox, CornellBox2, RandomLights, FinalScene, DebugCornell, DebugFinal,
}

func (t Type) Valid() bool {
	for _, v := range All {
		if v == t {
			return true
		}
	}
	return false
}

// Scene bundles a built camera and the BVH over its geometry, ready for
// the renderer to trace rays against.
type Scene struct {
	Camera *camera.Camera
	World  core.Hittable
}

func defaultConfig(width int) camera.Config {
	return camera.Config{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
		Background:  core.NewVec3(0.70, 0.80, 1.00),
	}
}

// Build dispatches on the scene type and returns the assembled Scene.
// rng seeds every scene's procedural content (random sphere placement,
// noise textures), so the same (type, width, seed) always yields the
// same geometry.
func Build(t Type, width int, rng *rand.Rand) (*Scene, error) {
	switch t {
	case MaterialDev:
		return buildMaterialDev(width), nil
	case CoverPhoto:
		return buildCoverPhoto(width, rng, false), nil
	case RandomLights:
		return buildCoverPhoto(width, rng, true), nil
	case TwoSpheres:
		return buildTwoSpheres(width), nil
	case TwoPerlinSpheres:
		return buildTwoPerlinSpheres(width, rng), nil
	case Earth:
		return buildEarth(width), nil
	case SimpleLight:
		return buildSimpleLight(width, rng), nil
	case CornellBox:
		return buildCornellBox(width, true), nil
	case CornellBox2:
		return buildCornellBox2(width), nil
	case DebugCornell:
		return buildCornellBox(width, false), nil
	case FinalScene:
		return buildFinalScene(width, rng, true), nil
	case DebugFinal:
		return buildFinalScene(width, rng, false), nil
	default:
		return nil, fmt.Errorf("scene: unknown scene type %q", t)
	}
}

func buildTree(shapes []core.Hittable) core.Hittable {
	return bvh.NewTree(shapes)
}
