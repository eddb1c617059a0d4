package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

func TestCamera_GetRayCorners(t *testing.T) {
	camera := NewCamera(2.0)

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected origin at zero, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_PixelRayRowZeroIsTop(t *testing.T) {
	camera := NewCamera(1.0)

	top := camera.PixelRay(1, 0, 3, 3)
	middle := camera.PixelRay(1, 1, 3, 3)
	bottom := camera.PixelRay(1, 2, 3, 3)

	if top.Direction.Y <= 0 || bottom.Direction.Y >= 0 {
		t.Errorf("Expected row 0 above row 2, got %v and %v", top.Direction, bottom.Direction)
	}
	if math.Abs(middle.Direction.X) > 1e-12 || math.Abs(middle.Direction.Y) > 1e-12 {
		t.Errorf("Expected centre pixel to look straight ahead, got %v", middle.Direction)
	}
}

func TestCamera_InvalidAspectFallsBack(t *testing.T) {
	for _, aspect := range []float64{0, -1, math.NaN()} {
		camera := NewCamera(aspect)
		want := NewCamera(16.0 / 9.0)
		if *camera != *want {
			t.Errorf("Expected aspect %v to fall back to 16:9", aspect)
		}
	}
}
