package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal, also the outward normal of every hit
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dirLength := ray.Direction.Length()
	if dirLength == 0 {
		return nil, false
	}

	// Cosine between the ray and the normal; near zero means the ray runs parallel
	denominator := ray.Direction.Multiply(1.0 / dirLength).Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// Distance along the unit direction, rescaled to the ray's own parametrization
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator / dirLength
	if t < 0 || t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

func (p *Plane) shape() {}
