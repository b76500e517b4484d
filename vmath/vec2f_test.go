package vmath

import (
	"math"
	"testing"
)

func TestV2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", Vec2{}, Vec2{}},
		{"axis", Vec2{0, -5}, Vec2{0, -1}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2Normalize(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("V2Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestV2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if got := V2Add(a, b); got != (Vec2{5, 8}) {
		t.Errorf("V2Add = %v", got)
	}
	if got := V2Sub(b, a); got != (Vec2{3, 4}) {
		t.Errorf("V2Sub = %v", got)
	}
	if got := V2Scale(a, -2); got != (Vec2{-2, -4}) {
		t.Errorf("V2Scale = %v", got)
	}
	if got := V2Dist(a, b); got != 5 {
		t.Errorf("V2Dist = %v, want 5", got)
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(20, 0, 0.25); got != 15 {
		t.Errorf("Lerp = %v, want 15", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
}
