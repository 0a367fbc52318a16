package common

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); !floatEquals(got, math.Pi) {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := DegToRad(-90); !floatEquals(got, -math.Pi/2) {
		t.Errorf("DegToRad(-90) = %v", got)
	}
}

func TestBuildModelMatrixYaw(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0, DegToRad(90), 0, 1, 1, 1)

	// +Z rotates onto +X under a quarter turn of yaw, then translates
	x, y, z := TransformPoint(m, 0, 0, 1)
	if !floatEquals(x, 2) || !floatEquals(y, 2) || !floatEquals(z, 3) {
		t.Errorf("point = (%v, %v, %v), want (2, 2, 3)", x, y, z)
	}

	// directions ignore translation
	x, y, z = TransformDirection(m, 0, 0, 1)
	if !floatEquals(x, 1) || !floatEquals(y, 0) || !floatEquals(z, 0) {
		t.Errorf("direction = (%v, %v, %v), want (1, 0, 0)", x, y, z)
	}
}

func TestBuildModelMatrixPitch(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, DegToRad(90), 0, 0, 1, 1, 1)

	x, y, z := TransformDirection(m, 0, 0, 1)
	if !floatEquals(x, 0) || !floatEquals(y, -1) || !floatEquals(z, 0) {
		t.Errorf("direction = (%v, %v, %v), want (0, -1, 0)", x, y, z)
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)

	x, y, z := TransformPoint(m, 4, 5, 6)
	if x != 4 || y != 5 || z != 6 {
		t.Errorf("identity moved the point to (%v, %v, %v)", x, y, z)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 10, 0, 0, 0, 0, 1, 0)

	x, y, z := TransformPoint(m, 0, 0, 10)
	if !floatEquals(x, 0) || !floatEquals(y, 0) || !floatEquals(z, 0) {
		t.Errorf("eye = (%v, %v, %v), want origin", x, y, z)
	}
	x, y, z = TransformPoint(m, 0, 0, 0)
	if !floatEquals(x, 0) || !floatEquals(y, 0) || !floatEquals(z, -10) {
		t.Errorf("center = (%v, %v, %v), want (0, 0, -10)", x, y, z)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "title"); got != "title" {
		t.Errorf("Coalesce = %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %v", got)
	}
}
