package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material is the surface description a shape hands back on a hit.
// Materials are shared between shapes and owned by the scene.
type Material interface {
	Name() string
	Albedo() Vec3
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit fills rec and returns true when the ray hits the shape at a
	// distance the interval rayT surrounds. rec is left untouched on a miss.
	Hit(ray Ray, rayT Interval, rec *HitRecord) bool
	BoundingBox() AABB
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, facing against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// OutwardNormal returns the geometric normal before face orientation was applied
func (h *HitRecord) OutwardNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}
