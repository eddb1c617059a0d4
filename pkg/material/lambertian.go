package material

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material. Only its albedo is used
// by the prober; scattering belongs to a full path tracer.
type Lambertian struct {
	name   string
	albedo core.Vec3
}

// NewLambertian creates a new lambertian material with solid color.
// Albedo components are clamped to [0, 1].
func NewLambertian(name string, albedo core.Vec3) *Lambertian {
	return &Lambertian{name: name, albedo: albedo.Clamp(0, 1)}
}

// Name returns the material name
func (l *Lambertian) Name() string {
	return l.name
}

// Albedo returns the base color
func (l *Lambertian) Albedo() core.Vec3 {
	return l.albedo
}
