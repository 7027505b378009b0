package geometry

import (
	"fmt"

	"github.com/o0olele/shape3d/math32"
)

// Box is an axis-aligned box stored as a center plus two corner offsets.
// Points[0] is the offset to the negative corner and Points[1] the offset
// to the positive one; the sign convention is not enforced.
type Box struct {
	Center math32.Vector3    `json:"center"`
	Points [2]math32.Vector3 `json:"points"`
}

// NewBox builds a box from its center and two corner offsets.
func NewBox(center, lo, hi math32.Vector3) Box {
	return Box{Center: center, Points: [2]math32.Vector3{lo, hi}}
}

// NewBoxFromAABB builds a box centered on the extent's midpoint.
func NewBoxFromAABB(aabb AABB) Box {
	half := aabb.Size().Scale(0.5)
	return NewBox(aabb.Center(), half.Neg(), half)
}

// Contains reports whether point lies in [corner, corner+2*Points[1]] on
// every axis, where corner is Center+Points[0]. Faces count as inside.
func (b Box) Contains(point math32.Vector3) (bool, error) {
	corner := b.Center.Add(b.Points[0])
	volume := b.Points[1].Scale(2)
	diff := point.Sub(corner)
	return !diff.Negative() && !volume.Sub(diff).Negative(), nil
}

// FindCenter returns the box center.
func (b Box) FindCenter() math32.Vector3 {
	return b.Center
}

// GetBoundingBox returns a copy of the box.
func (b Box) GetBoundingBox() (Box, error) {
	return b, nil
}

// GetBoundingSphere returns a sphere around Center with the length of
// Points[0] as radius. This is exact only for symmetric boxes.
func (b Box) GetBoundingSphere() (Sphere, error) {
	return Sphere{Center: b.Center, Radius: b.Points[0].Length()}, nil
}

// GetType returns TypeBox.
func (b Box) GetType() string {
	return TypeBox
}

// Min returns the world-space negative corner.
func (b Box) Min() math32.Vector3 {
	return b.Center.Add(b.Points[0])
}

// Max returns the far corner used by Contains.
func (b Box) Max() math32.Vector3 {
	return b.Min().Add(b.Points[1].Scale(2))
}

// Size returns the full extent used by Contains.
func (b Box) Size() math32.Vector3 {
	return b.Points[1].Scale(2)
}

// AABB returns the box as a min/max extent.
func (b Box) AABB() AABB {
	return AABB{Min: b.Min(), Max: b.Max()}
}

// Equal compares center and both corners exactly.
func (b Box) Equal(other Box) bool {
	return b.Center == other.Center && b.Points[0] == other.Points[0] && b.Points[1] == other.Points[1]
}

func (b Box) String() string {
	return fmt.Sprintf("%s %s %s", b.Center, b.Points[0], b.Points[1])
}
