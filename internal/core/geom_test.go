package core

import (
	"math"
	"testing"
)

func TestVecDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"horizontal", V(100, 100), V(105, 100), 5},
		{"pythagorean", V(0, 0), V(3, 4), 5},
		{"negative quadrant", V(-10, -10), V(-40, -50), 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Distance(tc.b)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", result, tc.expected)
			}
			// Also test symmetry
			if reverse := tc.b.Distance(tc.a); math.Abs(reverse-result) > 1e-9 {
				t.Errorf("Distance() (reversed) = %f, expected %f", reverse, result)
			}
		})
	}
}

func TestVecAddSub(t *testing.T) {
	a := V(1, 2)
	b := V(10, -4)

	if got := a.Add(b); got != V(11, -2) {
		t.Errorf("Add() = %v, expected (11, -2)", got)
	}
	if got := a.Sub(b); got != V(-9, 6) {
		t.Errorf("Sub() = %v, expected (-9, 6)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, -16, 16, 5.5},
		{-17, -16, 16, -16},
		{320.5, -320, 320, 320},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
