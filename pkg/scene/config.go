package scene

import (
	"math"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/df07/go-cube-raytracer/pkg/material"
	"github.com/segmentio/encoding/json"
)

const (
	// ErrTypeInvalidScene is the error type of scene files that fail validation.
	ErrTypeInvalidScene = "invalid-scene"

	// ErrTypeUnreadableScene is the error type of scene files that cannot be read or decoded.
	ErrTypeUnreadableScene = "unreadable-scene"
)

// Vec3Cfg is a vector written as a three element JSON array
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg is the camera section of a scene file
type CameraCfg struct {
	Width       int     `json:"width,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
}

// BackgroundCfg is the gradient used for rays that hit nothing
type BackgroundCfg struct {
	Top    *Vec3Cfg `json:"top,omitempty"`
	Bottom *Vec3Cfg `json:"bottom,omitempty"`
}

// MaterialCfg declares a named material
type MaterialCfg struct {
	Name   string  `json:"name"`
	Albedo Vec3Cfg `json:"albedo"`
}

// CubeCfg declares a rotated cube
type CubeCfg struct {
	Center   Vec3Cfg `json:"center"`
	Side     float64 `json:"side"`
	Rotation Vec3Cfg `json:"rotation"`
	Material string  `json:"material"`
}

// SphereCfg declares a sphere
type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// Config is the JSON layout of a scene file
type Config struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Camera      CameraCfg `json:"camera"`
	Accelerator string    `json:"accelerator,omitempty"`
	// When true, cube rotations are given in degrees instead of radians.
	Degrees    bool          `json:"degrees,omitempty"`
	Background BackgroundCfg `json:"background"`
	Materials  []MaterialCfg `json:"materials"`
	Cubes      []CubeCfg     `json:"cubes,omitempty"`
	Spheres    []SphereCfg   `json:"spheres,omitempty"`
}

// Load reads and builds the scene file at path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading scene file failed").
			WithType(ErrTypeUnreadableScene).
			WithTag("path", path).
			Wrap(err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.New("loading scene file failed").
			WithType(errors.Type(err)).
			WithTag("path", path).
			Wrap(err)
	}
	return s, nil
}

// Parse decodes a JSON scene description and builds the scene
func Parse(data []byte) (*Scene, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New("decoding scene failed").
			WithType(ErrTypeUnreadableScene).
			Wrap(err)
	}
	return Build(cfg)
}

// Build validates cfg and turns it into a scene
func Build(cfg Config) (*Scene, error) {
	name := cfg.Name
	if name == "" {
		name = "custom"
	}
	s := New(name)

	if cfg.Camera.Width != 0 {
		s.CameraConfig.Width = cfg.Camera.Width
	}
	if cfg.Camera.AspectRatio != 0 {
		s.CameraConfig.AspectRatio = cfg.Camera.AspectRatio
	}
	if s.CameraConfig.Width < 0 || s.CameraConfig.AspectRatio < 0 || math.IsInf(s.CameraConfig.AspectRatio, 0) {
		return nil, errors.New("invalid camera").
			WithType(ErrTypeInvalidScene).
			WithTag("width", s.CameraConfig.Width).
			WithTag("aspect_ratio", s.CameraConfig.AspectRatio)
	}

	if cfg.Accelerator != "" {
		s.Accelerator = cfg.Accelerator
	}
	if s.Accelerator != AcceleratorBVH && s.Accelerator != AcceleratorList {
		return nil, errors.New("unknown accelerator").
			WithType(ErrTypeInvalidScene).
			WithTag("accelerator", cfg.Accelerator)
	}

	if cfg.Background.Top != nil {
		s.TopColor = cfg.Background.Top.vec()
	}
	if cfg.Background.Bottom != nil {
		s.BottomColor = cfg.Background.Bottom.vec()
	}

	for _, m := range cfg.Materials {
		if err := s.Materials.Register(material.NewLambertian(m.Name, m.Albedo.vec())); err != nil {
			return nil, errors.New("invalid material").
				WithType(ErrTypeInvalidScene).
				Wrap(err)
		}
	}

	angle := func(v float64) float64 {
		if cfg.Degrees {
			return v * math.Pi / 180
		}
		return v
	}

	for i, c := range cfg.Cubes {
		if c.Side < 0 || math.IsNaN(c.Side) {
			return nil, errors.New("cube side must not be negative").
				WithType(ErrTypeInvalidScene).
				WithTag("cube", i).
				WithTag("side", c.Side)
		}
		err := s.AddCube(c.Center.vec(), c.Side,
			angle(c.Rotation[0]), angle(c.Rotation[1]), angle(c.Rotation[2]),
			c.Material)
		if err != nil {
			return nil, errors.New("invalid cube").
				WithType(ErrTypeInvalidScene).
				WithTag("cube", i).Wrap(err)
		}
	}

	for i, sp := range cfg.Spheres {
		if sp.Radius <= 0 || math.IsNaN(sp.Radius) {
			return nil, errors.New("sphere radius must be positive").
				WithType(ErrTypeInvalidScene).
				WithTag("sphere", i).
				WithTag("radius", sp.Radius)
		}
		if err := s.AddSphere(sp.Center.vec(), sp.Radius, sp.Material); err != nil {
			return nil, errors.New("invalid sphere").
				WithType(ErrTypeInvalidScene).
				WithTag("sphere", i).Wrap(err)
		}
	}

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
