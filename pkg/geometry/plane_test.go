package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	flat := NewPlane(core.NewVec3(1, 1, 0), core.NewVec3(0, 0, 1), nil)
	tilted := NewPlane(
		core.NewVec3(5, 4, -3),
		core.NewVec3(5, 4, -3).Cross(core.NewVec3(3, 6, -5)),
		nil,
	)

	tests := []struct {
		name      string
		plane     *Plane
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"Straight down", flat, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), true, 5.0},
		{"Origin on plane", flat, core.NewVec3(5, 9, 0), core.NewVec3(1, 0, -1), true, 0.0},
		{"Parallel", flat, core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 0), false, 0},
		{"Pointing away", flat, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 6), false, 0},
		{"Tilted plane", tilted, core.NewVec3(0, 0, 5), core.NewVec3(1, 1, -1), true, 22.5},
		{"Tilted behind", tilted, core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 10), false, 0},
		{"Tilted pointing away", tilted, core.NewVec3(0, 0, 5), core.NewVec3(-1, -1, 1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := tt.plane.Hit(ray, 0, math.Inf(1))

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Point, ray.At(hit.T), 1e-9) {
				t.Errorf("Hit point %v does not match ray.At(t) %v", hit.Point, ray.At(hit.T))
			}
			if math.Abs(hit.Point.Subtract(tt.plane.Point).Dot(tt.plane.Normal)) > 1e-9 {
				t.Errorf("Hit point %v does not lie on the plane", hit.Point)
			}
		})
	}
}

func TestPlane_Hit_ParallelNeverHits(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	origins := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(3, 0, -2),
	}

	for _, origin := range origins {
		ray := core.NewRay(origin, core.NewVec3(1, 0, 1))
		if _, isHit := plane.Hit(ray, 0, math.Inf(1)); isHit {
			t.Errorf("Parallel ray from %v should not hit", origin)
		}
	}
}

func TestPlane_Hit_FaceOrientation(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), nil)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"From above", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), true, core.NewVec3(0, 1, 0)},
		{"From below", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), false, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(core.NewRay(tt.origin, tt.direction), 0, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-12) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}
