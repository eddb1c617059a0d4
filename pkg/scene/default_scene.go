package scene

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/material"
)

// NewDefaultScene creates a small tilted cube resting above a large ground cube
func NewDefaultScene() *Scene {
	s := New("default")

	// The names are fixed and unique, registration cannot fail
	_ = s.Materials.Register(material.NewLambertian("center", core.NewVec3(0.7, 0.3, 0.3)))
	_ = s.Materials.Register(material.NewLambertian("ground", core.NewVec3(0.8, 0.8, 0.0)))

	_ = s.AddCube(core.NewVec3(0, 0, -1), 0.5, 0.5, -0.5, 0, "center")
	_ = s.AddCube(core.NewVec3(0, -6, -1), 10, 0.5, 0, 0, "ground")

	return s
}
