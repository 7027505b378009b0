package geometry

import (
	"fmt"
	"strings"

	"github.com/o0olele/shape3d/math32"
)

// Prism is a point cloud with a caller supplied center. The center is
// never recomputed from the points.
//
// A Prism is not safe for concurrent use while points are being added.
type Prism struct {
	points []math32.Vector3
	center math32.Vector3
}

// NewPrism creates a prism around center holding a copy of points.
func NewPrism(center math32.Vector3, points ...math32.Vector3) *Prism {
	p := &Prism{center: center}
	p.points = append(p.points, points...)
	return p
}

// AddPoint appends a point to the cloud.
func (p *Prism) AddPoint(point math32.Vector3) {
	p.points = append(p.points, point)
}

// Points returns a copy of the point cloud.
func (p *Prism) Points() []math32.Vector3 {
	out := make([]math32.Vector3, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of points.
func (p *Prism) Len() int {
	return len(p.points)
}

// SetCenter replaces the stored center.
func (p *Prism) SetCenter(center math32.Vector3) {
	p.center = center
}

// Contains reports whether the point is inside both the bounding box and
// the bounding sphere. This over-approximates the hull of the points.
// TODO: replace with a convex hull point test once faces are tracked.
func (p *Prism) Contains(point math32.Vector3) (bool, error) {
	box, err := p.GetBoundingBox()
	if err != nil {
		return false, err
	}
	sphere, err := p.GetBoundingSphere()
	if err != nil {
		return false, err
	}

	inBox, _ := box.Contains(point)
	inSphere, _ := sphere.Contains(point)
	return inBox && inSphere, nil
}

// FindCenter returns the stored center.
func (p *Prism) FindCenter() math32.Vector3 {
	return p.center
}

// GetBoundingBox returns a box around the stored center that uses the raw
// point min and max as corner offsets. Unlike Triangle it does not recenter
// on the midpoint of the points.
func (p *Prism) GetBoundingBox() (Box, error) {
	bounds, err := BoundsOf(p.points...)
	if err != nil {
		return Box{}, fmt.Errorf("prism bounding box: %w", err)
	}
	return NewBox(p.center, bounds.Min, bounds.Max), nil
}

// GetBoundingSphere returns a sphere around the stored center whose radius
// is the length of the componentwise max point, measured from the origin.
func (p *Prism) GetBoundingSphere() (Sphere, error) {
	bounds, err := BoundsOf(p.points...)
	if err != nil {
		return Sphere{}, fmt.Errorf("prism bounding sphere: %w", err)
	}
	return Sphere{Center: p.center, Radius: bounds.Max.Length()}, nil
}

// GetType returns TypePrism.
func (p *Prism) GetType() string {
	return TypePrism
}

func (p *Prism) String() string {
	parts := make([]string, len(p.points))
	for i, pt := range p.points {
		parts[i] = pt.String()
	}
	return fmt.Sprintf("%s {%s}", p.center, strings.Join(parts, ", "))
}
