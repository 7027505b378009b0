package geometry

import (
	"errors"

	"github.com/o0olele/shape3d/math32"
)

// Shape type names reported by GetType.
const (
	TypeBox      = "box"
	TypeSphere   = "sphere"
	TypeTriangle = "triangle"
	TypePrism    = "prism"
)

var (
	// ErrInvalidGeometry is returned when a shape has no points to query.
	ErrInvalidGeometry = errors.New("geometry: shape has no points")
	// ErrDegenerateTriangle is returned when triangle vertices are collinear.
	ErrDegenerateTriangle = errors.New("geometry: degenerate triangle")
)

// Shape is implemented by every primitive in this package.
//
// Contains is boundary inclusive. Bounding volumes are only minimal for Box
// and Sphere.
type Shape interface {
	Contains(point math32.Vector3) (bool, error)
	FindCenter() math32.Vector3
	GetBoundingBox() (Box, error)
	GetBoundingSphere() (Sphere, error)
	GetType() string
}

var (
	_ Shape = Box{}
	_ Shape = Sphere{}
	_ Shape = Triangle{}
	_ Shape = (*Prism)(nil)
)
