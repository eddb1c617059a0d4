package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rayT := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name string
		ray  Ray
		hit  bool
	}{
		{"through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"miss above", NewRay(NewVec3(0, 3, -5), NewVec3(0, 0, 1)), false},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false},
		{"parallel outside slab", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)), false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.hit, box.Hit(tt.ray, rayT))
		})
	}
}

func TestAABB_HitRespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	require.False(t, box.Hit(ray, NewInterval(0, 3)))
	require.True(t, box.Hit(ray, NewInterval(0, 4)))
	require.False(t, box.Hit(ray, NewInterval(7, 10)))
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 4, 0), NewVec3(0, 0, 5))
	require.Equal(t, NewVec3(-1, -2, 0), box.Min)
	require.Equal(t, NewVec3(1, 4, 5), box.Max)
	require.True(t, box.IsValid())
	require.Equal(t, 1, box.LongestAxis())
	require.Equal(t, NewVec3(0, 1, 2.5), box.Center())

	require.Equal(t, AABB{}, NewAABBFromPoints())
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 2), NewVec3(0.5, 3, 4))
	u := a.Union(b)
	require.Equal(t, NewVec3(-1, 0, 0), u.Min)
	require.Equal(t, NewVec3(1, 3, 4), u.Max)
	require.Equal(t, NewVec3(2, 3, 4), u.Size())
}
