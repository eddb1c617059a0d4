package geometry

import (
	"math"

	"github.com/df07/go-cube-raytracer/pkg/core"
)

// faceTolerance is how close a local hit coordinate must be to a bound to count as on that face
const faceTolerance = 1e-6

// Cube is a cube centered at Center and rotated by AngleX, AngleY, AngleZ (radians).
// The rotation is applied about X, then Y, then Z, see core.RotateXYZ.
type Cube struct {
	Center     core.Vec3
	SideLength float64
	AngleX     float64
	AngleY     float64
	AngleZ     float64
	Material   core.Material
	bbox       core.AABB
}

// NewCube creates a cube. Negative side lengths are clamped to zero.
func NewCube(center core.Vec3, sideLength, angleX, angleY, angleZ float64, material core.Material) *Cube {
	c := &Cube{
		Center:     center,
		SideLength: math.Max(0, sideLength),
		AngleX:     angleX,
		AngleY:     angleY,
		AngleZ:     angleZ,
		Material:   material,
	}
	c.bbox = c.computeBoundingBox()
	return c
}

// toLocal applies the inverse rotation used to bring world vectors into the cube frame
func (c *Cube) toLocal(v core.Vec3) core.Vec3 {
	return core.RotateXYZ(v, -c.AngleX, -c.AngleY, -c.AngleZ)
}

// toWorld applies the forward rotation
func (c *Cube) toWorld(v core.Vec3) core.Vec3 {
	return core.RotateXYZ(v, c.AngleX, c.AngleY, c.AngleZ)
}

// Hit tests the ray against the cube in its local frame with the slab method.
// Only the entry distance is checked against rayT, so rays starting inside the
// cube never report the exit face.
func (c *Cube) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord) bool {
	origin := c.toLocal(ray.Origin.Subtract(c.Center))
	direction := c.toLocal(ray.Direction)

	half := c.SideLength / 2
	minBound := core.NewVec3(-half, -half, -half)
	maxBound := core.NewVec3(half, half, half)

	// Zero direction components divide to signed infinities; NaNs fail the comparisons below
	tMin, tMax := slab(minBound.X, maxBound.X, origin.X, direction.X)

	tyMin, tyMax := slab(minBound.Y, maxBound.Y, origin.Y, direction.Y)
	if tMin > tyMax || tyMin > tMax {
		return false
	}
	tMin, tMax = narrow(tMin, tMax, tyMin, tyMax)

	tzMin, tzMax := slab(minBound.Z, maxBound.Z, origin.Z, direction.Z)
	if tMin > tzMax || tzMin > tMax {
		return false
	}
	tMin, _ = narrow(tMin, tMax, tzMin, tzMax)

	if !rayT.Surrounds(tMin) {
		return false
	}

	localPoint := origin.Add(direction.Multiply(tMin))
	outwardNormal := c.toWorld(faceNormal(localPoint, minBound, maxBound))

	rec.T = tMin
	rec.Point = ray.At(tMin)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = c.Material
	return true
}

// slab returns the ordered (entry, exit) parameters for one pair of parallel planes
func slab(low, high, origin, direction float64) (float64, float64) {
	t0 := (low - origin) / direction
	t1 := (high - origin) / direction
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}

// narrow clips the window [tMin, tMax] to [t0, t1]. A NaN bound leaves the window
// unchanged (math.Max and math.Min would return NaN).
func narrow(tMin, tMax, t0, t1 float64) (float64, float64) {
	if t0 > tMin {
		tMin = t0
	}
	if t1 < tMax {
		tMax = t1
	}
	return tMin, tMax
}

// faceNormal picks the face a local point lies on, testing -X, +X, -Y, +Y, -Z, +Z in
// that order. A point on an edge or corner gets the first matching face. A point on
// no face yields the zero vector.
func faceNormal(p, minBound, maxBound core.Vec3) core.Vec3 {
	switch {
	case math.Abs(p.X-minBound.X) < faceTolerance:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(p.X-maxBound.X) < faceTolerance:
		return core.NewVec3(1, 0, 0)
	case math.Abs(p.Y-minBound.Y) < faceTolerance:
		return core.NewVec3(0, -1, 0)
	case math.Abs(p.Y-maxBound.Y) < faceTolerance:
		return core.NewVec3(0, 1, 0)
	case math.Abs(p.Z-minBound.Z) < faceTolerance:
		return core.NewVec3(0, 0, -1)
	case math.Abs(p.Z-maxBound.Z) < faceTolerance:
		return core.NewVec3(0, 0, 1)
	}
	return core.Vec3{}
}

// BoundingBox returns the axis-aligned bounding box for this cube
func (c *Cube) BoundingBox() core.AABB {
	return c.bbox
}

// computeBoundingBox bounds the 8 corners after the forward rotation
func (c *Cube) computeBoundingBox() core.AABB {
	half := c.SideLength / 2
	var corners [8]core.Vec3
	for i := range corners {
		local := core.NewVec3(half, half, half)
		if i&1 != 0 {
			local.X = -half
		}
		if i&2 != 0 {
			local.Y = -half
		}
		if i&4 != 0 {
			local.Z = -half
		}
		corners[i] = c.toWorld(local).Add(c.Center)
	}
	return core.NewAABBFromPoints(corners[:]...)
}
