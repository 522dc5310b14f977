package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Distances are solved along the unit direction and divided by the ray's
// direction length so that T agrees with ray.At.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dirLength := ray.Direction.Length()
	if dirLength == 0 {
		return nil, false
	}
	unitDir := ray.Direction.Multiply(1.0 / dirLength)

	// Vector from ray origin to sphere center, and its projection on the ray
	el := s.Center.Subtract(ray.Origin)
	proj := el.Dot(unitDir)
	elSquared := el.LengthSquared()
	rSquared := s.Radius * s.Radius
	outside := elSquared > rSquared

	// Sphere is entirely behind the ray origin
	if proj < 0 && outside {
		return nil, false
	}

	// Squared distance from the center to the ray
	mSquared := elSquared - proj*proj
	if mSquared > rSquared {
		return nil, false
	}

	q := math.Sqrt(rSquared - mSquared)

	// From outside the near root is the entry point; from inside only the far root is ahead
	var root float64
	if outside {
		root = (proj - q) / dirLength
	} else {
		root = (proj + q) / dirLength
	}
	if root < tMin || root > tMax {
		if !outside {
			return nil, false
		}
		root = (proj + q) / dirLength
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Normalize()
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

func (s *Sphere) shape() {}
