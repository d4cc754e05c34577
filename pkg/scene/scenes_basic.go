package scene

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/camera"
	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/hittable"
	"github.com/arnholt/sahtrace/pkg/material"
)

func buildMaterialDev(width int) *Scene {
	var shapes []core.Hittable

	ground := material.NewLambertianColor(core.NewVec3(0.8, 0.8, 0.0))
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	center := material.NewLambertianColor(core.NewVec3(0.1, 0.2, 0.5))
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))

	left := material.NewDielectric(1.5)
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(-1.0, 0, -1), 0.5, left))
	bubble := material.NewDielectric(1.0 / 1.5)
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(-1.0, 0, -1), 0.4, bubble))

	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(1.0, 0, -1), 0.5, right))

	cfg := camera.Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
		Background:  core.NewVec3(0.70, 0.80, 1.00),
	}
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}

func buildCoverPhoto(width int, rng *rand.Rand, withLights bool) *Scene {
	var shapes []core.Hittable

	ground := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	lightCutoff := float32(1.01) // never trip unless withLights enables it below
	if withLights {
		lightCutoff = 0.80
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float32(a)+0.9*float32(rng.Float64()),
				0.2,
				float32(b)+0.9*float32(rng.Float64()),
			)
			if center.Sub(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(rng).MulVec(randomColor(rng))
				mat := core.Material(material.NewLambertianColor(albedo))
				if withLights && chooseMat > float64(lightCutoff)-0.05 && chooseMat < float64(lightCutoff) {
					mat = material.NewDiffuseLightColor(albedo, 4)
				}
				if chooseMat < 0.4 {
					center2 := center.Add(core.NewVec3(0, float32(rng.Float64())*0.5, 0))
					shapes = append(shapes, hittable.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
				} else {
					shapes = append(shapes, hittable.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := randomColorRange(rng, 0.5, 1)
				fuzz := float32(rng.Float64() * 0.5)
				shapes = append(shapes, hittable.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				shapes = append(shapes, hittable.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	shapes = append(shapes, hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))))
	shapes = append(shapes, hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	cfg := defaultConfig(width)
	cfg.Aperture = 0.1
	cfg.FocusDistance = 10.0
	if withLights {
		cfg.Background = core.NewVec3(0.02, 0.02, 0.03)
	}
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}

func randomColor(rng *rand.Rand) core.Vec3 {
	return core.NewVec3(float32(rng.Float64()), float32(rng.Float64()), float32(rng.Float64()))
}

func randomColorRange(rng *rand.Rand, min, max float64) core.Vec3 {
	r := func() float32 { return float32(min + rng.Float64()*(max-min)) }
	return core.NewVec3(r(), r(), r())
}

func buildTwoSpheres(width int) *Scene {
	checker := material.NewCheckered(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	mat := material.NewLambertian(checker)

	shapes := []core.Hittable{
		hittable.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
		hittable.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
	}

	cfg := defaultConfig(width)
	cfg.VFov = 20
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}

func buildTwoPerlinSpheres(width int, rng *rand.Rand) *Scene {
	noise := material.NewNoise(4, rng.Int63())
	mat := material.NewLambertian(noise)

	shapes := []core.Hittable{
		hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		hittable.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	}

	cfg := defaultConfig(width)
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}

func buildEarth(width int) *Scene {
	tex := textureOrFallback("earthmap.jpg")
	mat := material.NewLambertian(tex)
	shapes := []core.Hittable{hittable.NewSphere(core.NewVec3(0, 0, 0), 2, mat)}

	cfg := camera.Config{
		Center:      core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
		Background:  core.NewVec3(0.70, 0.80, 1.00),
	}
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}

func buildSimpleLight(width int, rng *rand.Rand) *Scene {
	noise := material.NewNoise(4, rng.Int63())
	mat := material.NewLambertian(noise)

	shapes := []core.Hittable{
		hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		hittable.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	}

	light := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1), 4)
	shapes = append(shapes, hittable.FromTwoPoints(core.NewVec3(3, 1, -2), core.NewVec3(5, 3, -2), light))

	cfg := camera.Config{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
		Background:  core.Vec3{},
	}
	return &Scene{Camera: camera.New(cfg), World: buildTree(shapes)}
}
