package flywheel

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMatrix3Identity(t *testing.T) {
	x, y := Identity3.Apply(12.5, -3)
	if x != 12.5 || y != -3 {
		t.Errorf("Identity3.Apply = (%v, %v)", x, y)
	}
	if !Identity3.IsAffine() {
		t.Error("identity should be affine")
	}
}

func TestMatrix3MulOrder(t *testing.T) {
	scale := Matrix3{2, 0, 0, 0, 2, 0, 0, 0, 1}
	// Translate first, then scale.
	m := scale.Mul(Translate3(10, 0))
	x, _ := m.Apply(1, 0)
	if x != 22 {
		t.Errorf("scale*translate: x = %v, want 22", x)
	}
	// Scale first, then translate.
	m = Translate3(10, 0).Mul(scale)
	x, _ = m.Apply(1, 0)
	if x != 12 {
		t.Errorf("translate*scale: x = %v, want 12", x)
	}
}

func TestMatrix3PrePostTranslate(t *testing.T) {
	scale := Matrix3{3, 0, 0, 0, 3, 0, 0, 0, 1}
	pre := scale.PreTranslate(1, 1)
	post := scale.PostTranslate(1, 1)
	if x, y := pre.Apply(0, 0); x != 3 || y != 3 {
		t.Errorf("PreTranslate: (%v, %v), want (3, 3)", x, y)
	}
	if x, y := post.Apply(0, 0); x != 1 || y != 1 {
		t.Errorf("PostTranslate: (%v, %v), want (1, 1)", x, y)
	}
}

func TestMatrix3Perspective(t *testing.T) {
	m := Matrix3{1, 0, 0, 0, 1, 0, 0, 0.01, 1}
	if m.IsAffine() {
		t.Error("matrix with a perspective row should not be affine")
	}
	x, y := m.Apply(10, 100)
	if !approx(x, 5, eps) || !approx(y, 50, eps) {
		t.Errorf("Apply = (%v, %v), want (5, 50)", x, y)
	}
	// Vanishing line.
	vanish := Matrix3{1, 0, 0, 0, 1, 0, 0, 1, 0}
	if x, _ := vanish.Apply(1, 0); !math.IsInf(x, 1) {
		t.Errorf("point on vanishing line = %v, want +Inf", x)
	}
}

func TestMatrix3InvertRoundTrip(t *testing.T) {
	cam := NewCamera()
	tests := []struct {
		name string
		m    Matrix3
	}{
		{"translate", Translate3(7, -3)},
		{"affine", Matrix3{2, 0.5, 4, -0.25, 1.5, 9, 0, 0, 1}},
		{"rotateX", cam.RotateX(30).PreTranslate(-50, -20).PostTranslate(50, 20)},
		{"rotateY", cam.RotateY(-45).PreTranslate(-40, -150)},
	}
	points := [][2]float64{{0, 0}, {10, 20}, {-35, 12.5}, {100, 60}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("expected invertible matrix")
			}
			for _, p := range points {
				x, y := tt.m.Apply(p[0], p[1])
				bx, by := inv.Apply(x, y)
				if !approx(bx, p[0], 1e-6) || !approx(by, p[1], 1e-6) {
					t.Errorf("round trip %v -> (%v, %v)", p, bx, by)
				}
			}
		})
	}
}

func TestMatrix3InvertSingular(t *testing.T) {
	_, ok := Matrix3{1, 2, 3, 2, 4, 6, 0, 0, 1}.Invert()
	if ok {
		t.Error("expected singular matrix to fail")
	}
}

func TestProjectedBounds(t *testing.T) {
	b := projectedBounds(Translate3(5, 6), 10, 20)
	want := Rect{X: 5, Y: 6, Width: 10, Height: 20}
	if b != want {
		t.Errorf("projectedBounds = %+v, want %+v", b, want)
	}
}
