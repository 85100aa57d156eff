package flywheel

import (
	"image"
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque", Color{R: 1, G: 0.5, B: 0, A: 1}, color.RGBA{255, 128, 0, 255}},
		{"premultiplied", Color{R: 1, G: 1, B: 1, A: 0.5}, color.RGBA{128, 128, 128, 128}},
		{"clamped", Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
		{"transparent", ColorTransparent, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBA(); got != tt.want {
				t.Errorf("RGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#ffffff", ColorWhite, false},
		{"#000000", ColorBlack, false},
		{"#80ff0000", Color{R: 1, A: 128.0 / 255}, false},
		{" #444444 ", ColorDarkGray, false},
		{"white", Color{}, true},
		{"#zz0000", Color{}, true},
		{"#gg000000", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.err {
				t.Fatalf("err = %v, want error %v", err, tt.err)
			}
			if !tt.err && !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	c := Color{R: 0x12 / 255.0, G: 0x34 / 255.0, B: 0x56 / 255.0, A: 0x78 / 255.0}
	if s := c.String(); s != "#78123456" {
		t.Errorf("String() = %q, want #78123456", s)
	}
	b, _ := c.MarshalText()
	var back Color
	if err := back.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !colorsClose(back, c, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, c)
	}
	if err := back.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for invalid color text")
	}
}

func TestColorFromStd(t *testing.T) {
	got := ColorFromStd(color.RGBA{R: 128, A: 128})
	if !approx(got.R, 1, 0.01) || !approx(got.A, 128.0/255, 1e-9) {
		t.Errorf("ColorFromStd = %v, want straight half red", got)
	}
}

func TestLerpColorKeepsHueThroughTransparent(t *testing.T) {
	c := Color{R: 0.8, G: 0.2, B: 0.1, A: 1}
	mid := lerpColor(c.WithAlpha(0), c, 0.5)
	if !approx(mid.R, c.R, 1e-9) || !approx(mid.A, 0.5, 1e-9) {
		t.Errorf("mid = %v, want hue of %v at half alpha", mid, c)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(10, 20) || r.Contains(40, 20) || r.Contains(10, 60) {
		t.Error("Contains should be half-open")
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Vec2{25, 40}) {
		t.Errorf("Center = %v", c)
	}
	if !r.Intersects(Rect{X: 40, Y: 20, Width: 5, Height: 5}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 41, Y: 20, Width: 5, Height: 5}) {
		t.Error("separate rects should not intersect")
	}
	if r.Offset(1, 2) != (Rect{X: 11, Y: 22, Width: 30, Height: 40}) {
		t.Error("Offset")
	}
	if !(Rect{Width: 0, Height: 5}).Empty() || r.Empty() {
		t.Error("Empty")
	}
	if got := (Rect{X: 0.4, Y: 0.6, Width: 9.2, Height: 9}).Image(); got != image.Rect(0, 1, 10, 10) {
		t.Errorf("Image = %v", got)
	}
	if got := rectFromImage(image.Rect(1, 2, 4, 8)); got != (Rect{X: 1, Y: 2, Width: 3, Height: 6}) {
		t.Errorf("rectFromImage = %+v", got)
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want Orientation
		err  bool
	}{
		{"vertical", Vertical, false},
		{"Horizontal", Horizontal, false},
		{" h ", Horizontal, false},
		{"v", Vertical, false},
		{"diagonal", Vertical, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrientation(tt.in)
			if (err != nil) != tt.err || got != tt.want {
				t.Errorf("ParseOrientation(%q) = %v, %v", tt.in, got, err)
			}
		})
	}

	var o Orientation
	if err := o.UnmarshalText([]byte("horizontal")); err != nil || o != Horizontal {
		t.Errorf("UnmarshalText = %v, %v", o, err)
	}
	if b, _ := Horizontal.MarshalText(); string(b) != "horizontal" {
		t.Errorf("MarshalText = %q", b)
	}
}

func TestOrientationAxes(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if s, l := Vertical.span(r); s != 2 || l != 4 {
		t.Errorf("vertical span = %v, %v", s, l)
	}
	if s, l := Horizontal.span(r); s != 1 || l != 3 {
		t.Errorf("horizontal span = %v, %v", s, l)
	}
	if Vertical.extent(10, 20) != 20 || Horizontal.extent(10, 20) != 10 {
		t.Error("extent")
	}
	if Vertical.crossExtent(10, 20) != 10 || Horizontal.crossExtent(10, 20) != 20 {
		t.Error("crossExtent")
	}
	if Vertical.shift(r, 5).Y != 7 || Horizontal.shift(r, 5).X != 6 {
		t.Error("shift")
	}
}
