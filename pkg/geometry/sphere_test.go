package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var rec core.HitRecord
	require.False(t, sphere.Hit(ray, defaultRange, &rec))
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)

			var rec core.HitRecord
			require.True(t, sphere.Hit(ray, defaultRange, &rec))
			require.InDelta(t, tt.expectedT, rec.T, 1e-9)
			require.Equal(t, tt.expectedFront, rec.FrontFace)
			requireVecNear(t, tt.expectedNormal, rec.Normal, 1e-9)
		})
	}
}

func TestSphere_Hit_RangeExcludesBothRoots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)) // roots 4 and 6

	var rec core.HitRecord
	require.False(t, sphere.Hit(ray, core.NewInterval(6, math.Inf(1)), &rec))
	require.True(t, sphere.Hit(ray, core.NewInterval(4, 10), &rec))
	require.InDelta(t, 6.0, rec.T, 1e-9)
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	bbox := sphere.BoundingBox()
	require.Equal(t, core.NewVec3(0.5, 1.5, 2.5), bbox.Min)
	require.Equal(t, core.NewVec3(1.5, 2.5, 3.5), bbox.Max)
}
