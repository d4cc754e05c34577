package scene

import (
	"github.com/arnholt/sahtrace/pkg/camera"
	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/hittable"
	"github.com/arnholt/sahtrace/pkg/material"
)

// cornellCamera is shared by every Cornell-box variant: looking down the
// box's axis from just outside the open wall.
func cornellCamera(width int) camera.Config {
	return camera.Config{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        40,
		Background:  core.Vec3{},
	}
}

// boxHelper builds the five enclosing walls and the ceiling light panel
// shared by cornell-box and debug-cornell, parameterized by the red/
// green/white/light materials. cornell-box-2 builds its own walls and
// does not use it.
func boxHelper(red, green, white core.Material, light core.Material) []core.Hittable {
	return []core.Hittable{
		hittable.FromBoundsK(0, 555, 0, 555, 555, core.AxisX, green),
		hittable.FromBoundsK(0, 555, 0, 555, 0, core.AxisX, red),
		hittable.FromBoundsK(213, 343, 227, 332, 554, core.AxisY, light),
		hittable.FromBoundsK(0, 555, 0, 555, 0, core.AxisY, white),
		hittable.FromBoundsK(0, 555, 0, 555, 555, core.AxisY, white),
		hittable.FromBoundsK(0, 555, 0, 555, 555, core.AxisZ, white),
	}
}

func buildCornellBox(width int, withBoxes bool) *Scene {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 15)

	shapes := boxHelper(red, green, white, light)

	if withBoxes {
		tall := hittable.NewQuadBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
		shapes = append(shapes, hittable.NewTransform(tall, core.NewVec3(265, 0, 295), 15))

		short := hittable.NewQuadBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
		shapes = append(shapes, hittable.NewTransform(short, core.NewVec3(130, 0, 65), -18))
	} else {
		shapes = append(shapes, hittable.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)))
		shapes = append(shapes, hittable.NewSphere(core.NewVec3(370, 90, 190), 90, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)))
	}

	return &Scene{Camera: camera.New(cornellCamera(width)), World: buildTree(shapes)}
}

// buildCornellBox2 builds the room from the canonical Cornell-data
// four-corner quad coordinates (rather than axis-aligned bound pairs),
// with measured wall colors and the same two rotated pedestal boxes as
// cornell-box.
func buildCornellBox2(width int) *Scene {
	red := material.NewLambertianColor(core.NewVec3(0.63, 0.06, 0.04))
	white := material.NewLambertianColor(core.NewVec3(0.76, 0.75, 0.71))
	green := material.NewLambertianColor(core.NewVec3(0.15, 0.48, 0.09))
	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 17)

	shapes := []core.Hittable{
		hittable.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), core.NewVec3(0, 555, 0), green),
		hittable.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(0, 0, -555), core.NewVec3(0, 555, 0), red),
		hittable.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		hittable.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		hittable.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	}

	box1 := hittable.NewQuadBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	shapes = append(shapes, hittable.NewTransform(box1, core.NewVec3(265, 0, 295), 15))
	box2 := hittable.NewQuadBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shapes = append(shapes, hittable.NewTransform(box2, core.NewVec3(130, 0, 65), -18))

	return &Scene{Camera: camera.New(cornellCamera(width)), World: buildTree(shapes)}
}
