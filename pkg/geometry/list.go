package geometry

import "github.com/df07/go-cube-raytracer/pkg/core"

// ShapeList is a flat aggregate that tests every shape against each ray
type ShapeList struct {
	Shapes []core.Shape
	bbox   core.AABB
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	l := &ShapeList{}
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape core.Shape) {
	if len(l.Shapes) == 0 {
		l.bbox = shape.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(shape.BoundingBox())
	}
	l.Shapes = append(l.Shapes, shape)
}

// Hit fills rec with the closest hit among all shapes
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord) bool {
	hitAnything := false
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of the shapes' bounding boxes
func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}
