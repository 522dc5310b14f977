package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape is anything a ray can hit. The family is closed to Sphere, Plane and Triangle.
type Shape interface {
	// Hit returns the intersection with T in [tMin, tMax], or false on a miss
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	shape()
}
