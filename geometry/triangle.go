package geometry

import (
	"fmt"
	"math"

	"github.com/o0olele/shape3d/math32"
)

// Triangle is a triangle geometry
type Triangle struct {
	Points [3]math32.Vector3 `json:"points"`
}

// NewTriangle returns the triangle abc.
func NewTriangle(a, b, c math32.Vector3) Triangle {
	return Triangle{Points: [3]math32.Vector3{a, b, c}}
}

// Normal returns the unnormalized plane normal (b-a)x(c-a).
func (t Triangle) Normal() math32.Vector3 {
	a := t.Points[0]
	return t.Points[1].Sub(a).Cross(t.Points[2].Sub(a))
}

// IsDegenerate reports whether the vertices are (nearly) collinear, i.e.
// the squared sine of the angle at the first vertex is within Epsilon.
func (t Triangle) IsDegenerate() bool {
	_, _, ok := t.plane()
	return !ok
}

// Contains checks whether the point lies on the triangle's plane.
//
// The edges are not tested: any coplanar point is reported as contained,
// including points outside the triangle itself. The signed distance to the
// plane is compared with Feq after dividing by the largest coordinate
// magnitude involved, so the tolerance follows float32 precision.
func (t Triangle) Contains(point math32.Vector3) (bool, error) {
	origin, normal, ok := t.plane()
	if !ok {
		return false, ErrDegenerateTriangle
	}

	distance := normal.dot(vec64Of(point).sub(origin))
	return math32.Feq(float32(distance/t.scale(point)), 0), nil
}

// plane returns the first vertex and the unit normal, in float64. ok is
// false when the triangle is degenerate.
func (t Triangle) plane() (origin, normal vec64, ok bool) {
	origin = vec64Of(t.Points[0])
	e1 := vec64Of(t.Points[1]).sub(origin)
	e2 := vec64Of(t.Points[2]).sub(origin)

	n := e1.cross(e2)
	nn := n.dot(n)
	if nn <= float64(math32.Epsilon)*e1.dot(e1)*e2.dot(e2) {
		return origin, vec64{}, false
	}

	l := math.Sqrt(nn)
	return origin, vec64{n[0] / l, n[1] / l, n[2] / l}, true
}

// scale returns the largest absolute coordinate of the vertices and point,
// at least 1.
func (t Triangle) scale(point math32.Vector3) float64 {
	s := 1.0
	for _, v := range append(t.Points[:], point) {
		s = math.Max(s, math.Abs(float64(v.X)))
		s = math.Max(s, math.Abs(float64(v.Y)))
		s = math.Max(s, math.Abs(float64(v.Z)))
	}
	return s
}

type vec64 [3]float64

func vec64Of(v math32.Vector3) vec64 {
	return vec64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func (v vec64) sub(o vec64) vec64 {
	return vec64{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v vec64) dot(o vec64) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v vec64) cross(o vec64) vec64 {
	return vec64{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// FindCenter returns the centroid.
func (t Triangle) FindCenter() math32.Vector3 {
	return t.Points[0].Add(t.Points[1]).Add(t.Points[2]).Div(3)
}

// GetBoundingBox returns the box spanning the vertex min and max, centered
// on their midpoint.
func (t Triangle) GetBoundingBox() (Box, error) {
	bounds, err := BoundsOf(t.Points[:]...)
	if err != nil {
		return Box{}, err
	}
	return NewBoxFromAABB(bounds), nil
}

// GetBoundingSphere returns a sphere on the bounding box midpoint.
//
// The radius is the length of the max corner measured from the origin, not
// from the midpoint. It encloses the triangle only when the origin lies
// inside the bounding box.
func (t Triangle) GetBoundingSphere() (Sphere, error) {
	bounds, err := BoundsOf(t.Points[:]...)
	if err != nil {
		return Sphere{}, err
	}
	return Sphere{Center: bounds.Center(), Radius: bounds.Max.Length()}, nil
}

// GetType returns TypeTriangle.
func (t Triangle) GetType() string {
	return TypeTriangle
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.Points[0], t.Points[1], t.Points[2])
}
