package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	// Monster positions are clamped to [0, W-size] in arena pixels.
	tests := []struct {
		val, min, max, expected float64
	}{
		{390.5, 0, 780, 390.5},
		{-2.25, 0, 780, 0},
		{781, 0, 780, 780},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2, expected float64
	}{
		{100, 300, 110, 300, 10},
		{0, 0, 3, 4, 5},
		{700, 300, 700, 300, 0},
	}

	for _, tc := range tests {
		if d := Distance(tc.x1, tc.y1, tc.x2, tc.y2); d != tc.expected {
			t.Errorf("Distance(%v,%v -> %v,%v) = %v, expected %v", tc.x1, tc.y1, tc.x2, tc.y2, d, tc.expected)
		}
	}
}

func TestDirection(t *testing.T) {
	ux, uy, dist := Direction(0, 0, 3, 4)
	if dist != 5 {
		t.Errorf("dist = %f, expected 5", dist)
	}
	if math.Abs(ux-0.6) > 1e-9 || math.Abs(uy-0.8) > 1e-9 {
		t.Errorf("Direction = (%f, %f), expected (0.6, 0.8)", ux, uy)
	}

	ux, uy, dist = Direction(7, 7, 7, 7)
	if ux != 0 || uy != 0 || dist != 0 {
		t.Errorf("Direction of coincident points = (%f, %f, %f), expected zeros", ux, uy, dist)
	}
}
