package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, math.Pi/2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, 0, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi, 0),
			expected: NewVec3(-1, 0, 0),
		},
		{
			name:     "Combined rotations",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, math.Pi/2), // 90° Y then 90° Z
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "X result feeds Y",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, math.Pi/2, 0), // X: (0,1,0)->(0,0,1), Y: (0,0,1)->(1,0,0)
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Y result feeds Z",
			vector:   NewVec3(0, 0, 1),
			rotation: NewVec3(0, math.Pi/2, math.Pi/2), // Y: (0,0,1)->(1,0,0), Z: (1,0,0)->(0,1,0)
			expected: NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.rotation)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRotateXYZ_MatchesSequentialAxisRotations(t *testing.T) {
	rotX := func(v Vec3, a float64) Vec3 {
		c, s := math.Cos(a), math.Sin(a)
		return NewVec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
	}
	rotY := func(v Vec3, a float64) Vec3 {
		c, s := math.Cos(a), math.Sin(a)
		return NewVec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
	}
	rotZ := func(v Vec3, a float64) Vec3 {
		c, s := math.Cos(a), math.Sin(a)
		return NewVec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
	}

	v := NewVec3(0.3, -1.2, 2.5)
	ax, ay, az := 0.7, -1.1, 2.3

	expected := rotZ(rotY(rotX(v, ax), ay), az)
	got := RotateXYZ(v, ax, ay, az)

	require.InDelta(t, expected.X, got.X, 1e-12)
	require.InDelta(t, expected.Y, got.Y, 1e-12)
	require.InDelta(t, expected.Z, got.Z, 1e-12)
}

func TestRotateXYZ_NegatedAnglesDoNotUndoInGeneral(t *testing.T) {
	v := NewVec3(1, 2, 3)
	ax, ay, az := 0.5, -0.5, 0.8

	roundTrip := RotateXYZ(RotateXYZ(v, ax, ay, az), -ax, -ay, -az)
	require.Greater(t, roundTrip.Subtract(v).Length(), 1e-3)

	// A single axis is undone by its negated angle
	single := RotateXYZ(RotateXYZ(v, 0, 0.9, 0), 0, -0.9, 0)
	require.InDelta(t, 0, single.Subtract(v).Length(), 1e-12)
}

func TestRotateXYZ_PreservesLength(t *testing.T) {
	v := NewVec3(-4, 0.25, 7)
	r := RotateXYZ(v, 1.3, 2.9, -0.4)
	require.InDelta(t, v.Length(), r.Length(), 1e-12)
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	require.Equal(t, NewVec3(1, 2, 3), ray.At(0))
	require.Equal(t, NewVec3(1, 2, -1), ray.At(2))
}

func TestVec3_Normalize_Zero(t *testing.T) {
	require.Equal(t, Vec3{}, Vec3{}.Normalize())
	require.InDelta(t, 1.0, NewVec3(3, 4, 12).Normalize().Length(), 1e-12)
}
