package render

import (
	"math"
	"testing"

	"github.com/taigrr/biome/pkg/math3d"
)

func newTestCamera(t *testing.T, eye math3d.Vec3) *Camera {
	t.Helper()
	c, err := NewCamera(eye, math3d.Zero3(), math3d.Up())
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return c
}

func TestNewCameraRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name            string
		eye, target, up math3d.Vec3
	}{
		{"eye equals target", math3d.V3(1, 2, 3), math3d.V3(1, 2, 3), math3d.Up()},
		{"zero up", math3d.V3(0, 0, 5), math3d.Zero3(), math3d.Zero3()},
		{"view parallel to up", math3d.V3(0, 5, 0), math3d.Zero3(), math3d.Up()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCamera(tc.eye, tc.target, tc.up); err == nil {
				t.Error("expected error for degenerate configuration")
			}
		})
	}
}

func TestBaseChangeIdentity(t *testing.T) {
	// Eye straight behind the target on +z: the basis is the canonical
	// frame, so BaseChange is the identity.
	c := newTestCamera(t, math3d.V3(0, 0, 5))

	for _, v := range []math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
		math3d.V3(0, 0, -1),
		math3d.V3(0.3, -0.4, -1),
	} {
		if got := c.BaseChange(v); !vecNear(got, v) {
			t.Errorf("BaseChange(%v) = %v, want identity", v, got)
		}
	}
}

func TestBaseChangePointsTowardTarget(t *testing.T) {
	// From any eye position, the camera-space forward ray (0,0,-1) must
	// come out pointing from eye toward target.
	for _, eye := range []math3d.Vec3{
		math3d.V3(0, 0, 5),
		math3d.V3(10, 7, -3),
		math3d.V3(-4, 2, 8),
	} {
		c := newTestCamera(t, eye)
		got := c.BaseChange(math3d.V3(0, 0, -1))
		want := c.Target.Sub(eye).Normalize()
		if !vecNearEps(got, want, 1e-9) {
			t.Errorf("eye %v: forward = %v, want %v", eye, got, want)
		}
	}
}

func TestOrbitPreservesDistance(t *testing.T) {
	c := newTestCamera(t, math3d.V3(0, 5, 35))
	before := c.Distance()

	c.Orbit(0.7, 0.3)
	if math.Abs(c.Distance()-before) > 1e-9 {
		t.Errorf("distance changed: %v -> %v", before, c.Distance())
	}
}

func TestOrbitInverseRestoresEye(t *testing.T) {
	c := newTestCamera(t, math3d.V3(0, 5, 35))
	original := c.Eye

	c.Orbit(0.4, 0.25)
	c.Orbit(-0.4, -0.25)

	if !vecNearEps(c.Eye, original, 1e-9) {
		t.Errorf("Eye = %v, want %v", c.Eye, original)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := newTestCamera(t, math3d.V3(0, 0, 10))

	// Crank pitch far past the pole; the eye must stay short of it and the
	// basis must stay finite.
	c.Orbit(0, 10)
	if c.Eye.Y >= c.Distance() {
		t.Errorf("pitch not clamped: eye %v", c.Eye)
	}
	d := c.BaseChange(math3d.V3(0, 0, -1))
	if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsNaN(d.Z) {
		t.Errorf("basis degenerated to NaN: %v", d)
	}
}

func TestZoomFloor(t *testing.T) {
	c := newTestCamera(t, math3d.V3(0, 0, 10))

	c.Zoom(4)
	if math.Abs(c.Distance()-6) > 1e-9 {
		t.Errorf("Distance = %v, want 6", c.Distance())
	}

	c.Zoom(100)
	if c.Distance() < MinZoomDistance-1e-9 {
		t.Errorf("Distance = %v, below floor", c.Distance())
	}

	// Zooming out still works from the floor
	c.Zoom(-5)
	if math.Abs(c.Distance()-(MinZoomDistance+5)) > 1e-9 {
		t.Errorf("Distance = %v after zooming back out", c.Distance())
	}
}

func TestBaseChangeNeverStale(t *testing.T) {
	c := newTestCamera(t, math3d.V3(0, 0, 5))

	before := c.BaseChange(math3d.V3(0, 0, -1))
	c.Orbit(math.Pi/2, 0)
	after := c.BaseChange(math3d.V3(0, 0, -1))

	if vecNear(before, after) {
		t.Error("basis not recomputed after orbit")
	}
	want := c.Target.Sub(c.Eye).Normalize()
	if !vecNearEps(after, want, 1e-9) {
		t.Errorf("stale basis: forward %v, want %v", after, want)
	}
}

func vecNearEps(a, b math3d.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
