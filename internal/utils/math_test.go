package utils

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp = %v, want 12.5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{-5, 0},
		{0, 0},
		{7, 7},
		{10, 10},
		{12, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 10); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	ux, uy, l := Normalize(3, 4)
	if ux != 0.6 || uy != 0.8 || l != 5 {
		t.Errorf("Normalize(3,4) = %v %v %v", ux, uy, l)
	}
	ux, uy, l = Normalize(0, 0)
	if ux != 0 || uy != 0 || l != 0 {
		t.Errorf("zero vector must stay zero, got %v %v %v", ux, uy, l)
	}
}

func TestNormalizeAngle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-100, 100).Draw(t, "angle")
		n := NormalizeAngle(a)
		if n < -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v out of range", a, n)
		}
		if d := math.Abs(math.Sin(n) - math.Sin(a)); d > 1e-9 {
			t.Fatalf("sin differs by %v", d)
		}
		if d := math.Abs(math.Cos(n) - math.Cos(a)); d > 1e-9 {
			t.Fatalf("cos differs by %v", d)
		}
	})
}

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	if a.Seed() != 42 {
		t.Fatalf("Seed = %d", a.Seed())
	}
	for i := 0; i < 100; i++ {
		if x, y := a.Range(-1, 1), b.Range(-1, 1); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Fatal("zero seed must be replaced by a time based one")
	}
}

func TestPRNGRange(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(200, 400); v < 200 || v >= 400 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
}
