package common

import (
	"math"
	"testing"
)

func floatEquals(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{X: 3, Y: 4}, Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec2{X: 3, Y: -8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Vec2{X: -3, Y: -4}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Magnitude(); !floatEquals(got, 5) {
		t.Errorf("Magnitude = %v", got)
	}
}

func TestVec2IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))

	tests := []struct {
		v    Vec2
		want bool
	}{
		{Vec2{X: 1, Y: 2}, true},
		{Vec2{X: nan, Y: 0}, false},
		{Vec2{X: 0, Y: inf}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestClampAndRange(t *testing.T) {
	if got := Clamp(50, -45, 45); got != 45 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-50, -45, 45); got != -45 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := ClampVec2(Vec2{X: 60, Y: -60}, Vec2{X: -45, Y: -30}, Vec2{X: 45, Y: 30}); got != (Vec2{X: 45, Y: -30}) {
		t.Errorf("ClampVec2 = %v", got)
	}

	if !WithinRange(45, -45, 45) || !WithinRange(-45, -45, 45) {
		t.Error("WithinRange excludes its bounds")
	}
	if WithinRange(45.01, -45, 45) {
		t.Error("WithinRange includes a value past the bound")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 10, 20, 0, 10},
		{"middle", 10, 20, 0.25, 12.5},
		{"end", 10, 20, 1, 20},
		{"no overshoot", 10, 20, 1.5, 20},
		{"no undershoot", 10, 20, -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !floatEquals(got, tt.want) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		name        string
		a, b, value float32
		want        float32
	}{
		{"inside", 20, 45, 40, 0.8},
		{"below", 20, 45, 10, 0},
		{"above", 20, 45, 50, 1},
		{"descending range", -20, -45, -40, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InverseLerp(tt.a, tt.b, tt.value); !floatEquals(got, tt.want) {
				t.Errorf("InverseLerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.value, got, tt.want)
			}
		})
	}
}

func TestDampToZero(t *testing.T) {
	if got := DampToZero(1, 0.25); got != 0.75 {
		t.Errorf("positive = %v", got)
	}
	if got := DampToZero(-1, 0.25); got != -0.75 {
		t.Errorf("negative = %v", got)
	}
	if got := DampToZero(0.1, 0.25); got != 0 {
		t.Errorf("crossed zero from above: %v", got)
	}
	if got := DampToZero(-0.1, 0.25); got != 0 {
		t.Errorf("crossed zero from below: %v", got)
	}
	if got := DampToZero(3, 0); got != 3 {
		t.Errorf("zero step changed value: %v", got)
	}

	v := Vec2{X: 1, Y: -0.5}
	steps := 0
	for v != (Vec2{}) {
		v = DampVec2ToZero(v, Vec2{X: 0.1, Y: 0.1})
		steps++
		if steps > 100 {
			t.Fatal("DampVec2ToZero never reached zero")
		}
	}
}
