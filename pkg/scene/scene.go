package scene

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/geometry"
	"github.com/df07/go-cube-raytracer/pkg/material"
)

const (
	// AcceleratorBVH builds a bounding volume hierarchy over the shapes.
	AcceleratorBVH = "bvh"

	// AcceleratorList tests every shape for every ray.
	AcceleratorList = "list"
)

// Scene contains all the elements needed for probing
type Scene struct {
	Name         string
	CameraConfig CameraConfig
	Materials    *material.Library
	Shapes       []core.Shape
	Accelerator  string
	TopColor     core.Vec3
	BottomColor  core.Vec3
	world        core.Shape
}

// CameraConfig describes the image the scene wants
type CameraConfig struct {
	Width       int
	AspectRatio float64
}

// Height returns the image height for the configured width and aspect ratio
func (c CameraConfig) Height() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// New creates an empty scene with an empty material library
func New(name string) *Scene {
	return &Scene{
		Name: name,
		CameraConfig: CameraConfig{
			Width:       400,
			AspectRatio: 16.0 / 9.0,
		},
		Materials:   material.NewLibrary(),
		Accelerator: AcceleratorBVH,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// AddCube adds a cube referencing a material from the scene library
func (s *Scene) AddCube(center core.Vec3, side, angleX, angleY, angleZ float64, materialName string) error {
	mat, err := s.Materials.Get(materialName)
	if err != nil {
		return errors.New("adding cube failed").
			WithType(errors.Type(err)).
			Wrap(err)
	}
	s.Shapes = append(s.Shapes, geometry.NewCube(center, side, angleX, angleY, angleZ, mat))
	s.world = nil
	return nil
}

// AddSphere adds a sphere referencing a material from the scene library
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialName string) error {
	mat, err := s.Materials.Get(materialName)
	if err != nil {
		return errors.New("adding sphere failed").
			WithType(errors.Type(err)).
			Wrap(err)
	}
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, mat))
	s.world = nil
	return nil
}

// Preprocess builds the aggregate the renderer intersects against
func (s *Scene) Preprocess() error {
	switch s.Accelerator {
	case AcceleratorBVH, "":
		s.world = core.NewBVH(s.Shapes)
	case AcceleratorList:
		s.world = geometry.NewShapeList(s.Shapes...)
	default:
		return errors.New("unknown accelerator").
			WithType(ErrTypeInvalidScene).
			WithTag("accelerator", s.Accelerator)
	}
	return nil
}

// GetWorld returns the aggregate of all shapes, building it on first use
func (s *Scene) GetWorld() core.Shape {
	if s.world == nil {
		// An unknown accelerator falls back to the BVH
		if err := s.Preprocess(); err != nil {
			s.world = core.NewBVH(s.Shapes)
		}
	}
	return s.world
}

// GetBackgroundColors returns the gradient used for rays that hit nothing
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapeCount returns the number of shapes in the scene
func (s *Scene) GetShapeCount() int {
	return len(s.Shapes)
}
