package geometry

import (
	"fmt"

	"github.com/o0olele/shape3d/math32"
)

// Sphere is a center and a radius. A negative radius is not rejected but
// contains nothing.
type Sphere struct {
	Center math32.Vector3 `json:"center"`
	Radius float32        `json:"radius"`
}

// NewSphere returns a sphere.
func NewSphere(center math32.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Contains checks if the point is inside the sphere, boundary included.
func (s Sphere) Contains(point math32.Vector3) (bool, error) {
	return s.Radius >= s.Center.Distance(point), nil
}

// FindCenter returns the sphere center.
func (s Sphere) FindCenter() math32.Vector3 {
	return s.Center
}

// GetBoundingBox returns the cube of half-size Radius around Center.
func (s Sphere) GetBoundingBox() (Box, error) {
	r := math32.Splat(s.Radius)
	return NewBox(s.Center, r.Neg(), r), nil
}

// GetBoundingSphere returns the sphere itself.
func (s Sphere) GetBoundingSphere() (Sphere, error) {
	return s, nil
}

// GetType returns TypeSphere.
func (s Sphere) GetType() string {
	return TypeSphere
}

// Equal compares centers exactly and radii with math32.Feq.
func (s Sphere) Equal(other Sphere) bool {
	return s.Center == other.Center && math32.Feq(s.Radius, other.Radius)
}

func (s Sphere) String() string {
	return fmt.Sprintf("%s %g", s.Center, s.Radius)
}
