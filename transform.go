package flywheel

import "math"

// Matrix3 is a 2D projective transform (homography), row-major:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// A point (x, y) maps to ((m0x+m1y+m2)/w, (m3x+m4y+m5)/w) with
// w = m6x+m7y+m8.
type Matrix3 [9]float64

// Identity3 is the identity transform.
var Identity3 = Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Translate3 returns a translation by (tx, ty).
func Translate3(tx, ty float64) Matrix3 {
	return Matrix3{1, 0, tx, 0, 1, ty, 0, 0, 1}
}

// Mul returns m * n: n is applied first, then m.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return r
}

// PreTranslate returns m * Translate3(tx, ty).
func (m Matrix3) PreTranslate(tx, ty float64) Matrix3 {
	return m.Mul(Translate3(tx, ty))
}

// PostTranslate returns Translate3(tx, ty) * m.
func (m Matrix3) PostTranslate(tx, ty float64) Matrix3 {
	return Translate3(tx, ty).Mul(m)
}

// Apply maps the point (x, y). Points on the vanishing line map to +Inf.
func (m Matrix3) Apply(x, y float64) (float64, float64) {
	w := m[6]*x + m[7]*y + m[8]
	if w == 0 {
		return math.Inf(1), math.Inf(1)
	}
	return (m[0]*x + m[1]*y + m[2]) / w, (m[3]*x + m[4]*y + m[5]) / w
}

// IsAffine reports whether m has no perspective component.
func (m Matrix3) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// Invert returns the inverse of m. ok is false for a singular matrix, in
// which case the identity is returned.
func (m Matrix3) Invert() (inv Matrix3, ok bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	co0 := e*i - f*h
	co1 := f*g - d*i
	co2 := d*h - e*g
	det := a*co0 + b*co1 + c*co2
	if det > -1e-12 && det < 1e-12 {
		return Identity3, false
	}
	invDet := 1 / det
	return Matrix3{
		co0 * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		co1 * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		co2 * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}

// projectedBounds returns the bounding box of the w×h rectangle at the
// origin under m.
func projectedBounds(m Matrix3, w, h float64) Rect {
	xs := [4]float64{0, w, 0, w}
	ys := [4]float64{0, 0, h, h}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for k := range xs {
		x, y := m.Apply(xs[k], ys[k])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
