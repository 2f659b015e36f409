package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false}, // right edge is exclusive
		{2, 5, false}, // bottom edge is exclusive
		{1, 3, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %d", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1,0,3) = %d", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2,0,3) = %d", got)
	}
}

func TestPlaneDist(t *testing.T) {
	a := Vec3{X: 0, Y: 99, Z: 0}
	b := Vec3{X: 3, Y: -5, Z: 4}

	// Y must not contribute
	if got := a.PlaneDist(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("PlaneDist = %f, want 5", got)
	}
}
