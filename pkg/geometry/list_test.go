package geometry

import (
	"testing"

	"github.com/df07/go-cube-raytracer/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestShapeList_ClosestHit(t *testing.T) {
	near := &testMaterial{name: "near"}
	far := &testMaterial{name: "far"}

	list := NewShapeList(
		NewCube(core.NewVec3(0, 0, -10), 2, 0, 0, 0, far),
		NewCube(core.NewVec3(0, 0, -4), 2, 0.3, 0.2, 0.1, near),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	var rec core.HitRecord
	require.True(t, list.Hit(ray, defaultRange, &rec))
	require.Same(t, near, rec.Material)
	require.Less(t, rec.T, 5.0)
}

func TestShapeList_Empty(t *testing.T) {
	list := NewShapeList()
	var rec core.HitRecord
	require.False(t, list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), defaultRange, &rec))
	require.Equal(t, core.AABB{}, list.BoundingBox())
}

func TestShapeList_BoundingBox(t *testing.T) {
	list := NewShapeList(
		NewSphere(core.NewVec3(-2, 0, 0), 1, nil),
		NewCube(core.NewVec3(3, 0, 0), 2, 0, 0, 0, nil),
	)
	bbox := list.BoundingBox()
	require.Equal(t, core.NewVec3(-3, -1, -1), bbox.Min)
	require.Equal(t, core.NewVec3(4, 1, 1), bbox.Max)
}

func TestShapeList_MatchesBVH(t *testing.T) {
	shapes := make([]core.Shape, 0, 30)
	for i := 0; i < 30; i++ {
		x := float64(i%6) - 2.5
		y := float64(i/6) - 2
		shapes = append(shapes, NewCube(core.NewVec3(x, y, -6-float64(i%3)), 0.6, 0.1*float64(i), 0.2, -0.1*float64(i), &testMaterial{}))
	}
	list := NewShapeList(shapes...)
	bvh := core.NewBVH(shapes)

	for px := -10; px <= 10; px++ {
		for py := -10; py <= 10; py++ {
			ray := core.NewRay(core.Vec3{}, core.NewVec3(float64(px)*0.05, float64(py)*0.05, -1))
			var a, b core.HitRecord
			hitA := list.Hit(ray, defaultRange, &a)
			hitB := bvh.Hit(ray, defaultRange, &b)
			require.Equal(t, hitA, hitB)
			if hitA {
				require.InDelta(t, a.T, b.T, 1e-12)
			}
		}
	}
}
