package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raycore/pkg/core"
)

const tolerance = 1e-9

func TestRayPlaneIntersectionT(t *testing.T) {
	zPlane := NewPlane(core.NewVec3(0, 0, 1), 0)
	xPlane := NewPlane(core.NewVec3(1, 0, 0), 0)

	tests := []struct {
		name      string
		plane     Plane
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray straight down onto z=0",
			plane:     zPlane,
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 5,
		},
		{
			name:      "Ray parallel to z=0",
			plane:     zPlane,
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0)),
			shouldHit: false,
			expectedT: 0,
		},
		{
			name:      "Ray lying in the plane",
			plane:     zPlane,
			ray:       core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0)),
			shouldHit: false,
			expectedT: 0,
		},
		{
			name:      "Plane behind the ray origin",
			plane:     xPlane,
			ray:       core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit: true,
			expectedT: -5,
		},
		{
			name:      "Non-unit direction scales t",
			plane:     zPlane,
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -2)),
			shouldHit: true,
			expectedT: 2.5,
		},
		{
			name:      "Offset, non-unit normal",
			plane:     NewPlane(core.NewVec3(0, 2, 0), -4), // y = 2
			ray:       core.NewRay(core.NewVec3(3, -1, 7), core.NewVec3(0, 1, 0)),
			shouldHit: true,
			expectedT: 3,
		},
		{
			name:      "Oblique ray",
			plane:     zPlane,
			ray:       core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(1, 1, -1)),
			shouldHit: true,
			expectedT: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, ok := RayPlaneIntersectionT(tt.ray, tt.plane)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v (t=%f)", tt.shouldHit, ok, tHit)
			}
			if math.Abs(tHit-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, tHit)
			}
			if ok && math.Abs(tt.plane.Evaluate(tt.ray.At(tHit))) > tolerance {
				t.Errorf("Hit point %v is not on the plane", tt.ray.At(tHit))
			}
		})
	}
}

func TestNewPlaneFromPoints(t *testing.T) {
	a := core.NewVec3(0, 0, 1)
	b := core.NewVec3(1, 0, 1)
	c := core.NewVec3(0, 1, 1)

	plane, err := NewPlaneFromPoints(a, b, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plane.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1) from counter-clockwise winding, got %v", plane.Normal)
	}
	for _, p := range []core.Vec3{a, b, c, core.NewVec3(7, -3, 1)} {
		if math.Abs(plane.Evaluate(p)) > tolerance {
			t.Errorf("Point %v should be on the plane, got %f", p, plane.Evaluate(p))
		}
	}
	if plane.Evaluate(core.NewVec3(0, 0, 3)) <= 0 {
		t.Error("Expected positive value on the normal side")
	}
}

func TestNewPlaneFromPoints_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c core.Vec3
	}{
		{"coincident", core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1)},
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlaneFromPoints(tt.a, tt.b, tt.c); !errors.Is(err, ErrDegeneratePlane) {
				t.Errorf("Expected ErrDegeneratePlane, got %v", err)
			}
		})
	}
}
