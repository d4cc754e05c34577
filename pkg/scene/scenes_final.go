package scene

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/camera"
	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/hittable"
	"github.com/arnholt/sahtrace/pkg/material"
)

// buildFinalScene assembles the book-2 finale: a floor of randomly
// heighted boxes, a light panel, a moving sphere, glass/metal/subsurface
// spheres, a fog volume, an earth sphere, a noise sphere and a 1000-
// sphere swarm under a single rotate+translate instance. full controls
// whether the floor/props are included (final-scene) or only the light
// and sphere swarm are (debug-final, for isolating the instancing path).
func buildFinalScene(width int, rng *rand.Rand, full bool) *Scene {
	var shapes []core.Hittable

	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 7)
	shapes = append(shapes, hittable.FromBoundsK(123, 423, 147, 412, 554, core.AxisY, light))

	if full {
		ground := material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))
		var floorBoxes []core.Hittable
		const boxesPerSide = 20
		for i := 0; i < boxesPerSide; i++ {
			for j := 0; j < boxesPerSide; j++ {
				w := float32(100)
				x0 := -1000 + float32(i)*w
				z0 := -1000 + float32(j)*w
				y0 := float32(0)
				y1 := float32(1 + rng.Float64()*100)
				x1 := x0 + w
				z1 := z0 + w
				floorBoxes = append(floorBoxes, hittable.NewQuadBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
			}
		}
		shapes = append(shapes, buildTree(floorBoxes))

		movingSphereMat := material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1))
		center1 := core.NewVec3(400, 400, 200)
		center2 := center1.Add(core.NewVec3(30, 0, 0))
		shapes = append(shapes, hittable.NewMovingSphere(center1, center2, 0, 1, 50, movingSphereMat))

		shapes = append(shapes, hittable.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
		shapes = append(shapes, hittable.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

		boundary := hittable.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
		shapes = append(shapes, boundary)
		shapes = append(shapes, hittable.NewConstantMedium(boundary, 0.2, material.NewIsotropicColor(core.NewVec3(0.2, 0.4, 0.9)), rng))

		mist := hittable.NewSphere(core.Vec3{}, 5000, material.NewDielectric(1.5))
		shapes = append(shapes, hittable.NewConstantMedium(mist, 0.0001, material.NewIsotropicColor(core.NewVec3(1, 1, 1)), rng))

		earthTex := textureOrFallback("earthmap.jpg")
		shapes = append(shapes, hittable.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertian(earthTex)))

		noise := material.NewNoise(0.2, rng.Int63())
		shapes = append(shapes, hittable.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertian(noise)))
	}

	swarmMat := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	var swarm []core.Hittable
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(
			float32(rng.Float64()*165),
			float32(rng.Float64()*165),
			float32(rng.Float64()*165),
		)
		swarm = append(swarm, hittable.NewSphere(center, 10, swarmMat))
	}
	swarmTree := buildTree(swarm)
	shapes = append(shapes, hittable.NewTransform(swarmTree, core.NewVec3(-100, 270, 395), 15))

	cfg := camera.Config{
		Center:      core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        40,
		Background:  core.Vec3{},
		ShutterOpen: 0,
		ShutterClose: 1,
	}
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}
