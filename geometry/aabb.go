package geometry

import "github.com/o0olele/shape3d/math32"

// AABB is a min/max extent. Triangle and Prism scan their points into one
// before turning it into a Box.
type AABB struct {
	Min math32.Vector3 `json:"min"`
	Max math32.Vector3 `json:"max"`
}

// BoundsOf returns the componentwise min and max of points.
func BoundsOf(points ...math32.Vector3) (AABB, error) {
	if len(points) == 0 {
		return AABB{}, ErrInvalidGeometry
	}

	bounds := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min = bounds.Min.MinComponents(p)
		bounds.Max = bounds.Max.MaxComponents(p)
	}
	return bounds, nil
}

// Center returns the midpoint of min and max.
func (aabb AABB) Center() math32.Vector3 {
	return aabb.Min.Add(aabb.Max).Scale(0.5)
}

// Size returns the size of the AABB
func (aabb AABB) Size() math32.Vector3 {
	return aabb.Max.Sub(aabb.Min)
}
