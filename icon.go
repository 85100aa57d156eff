package flywheel

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultIconSize is the raster size for SVG icons when none is given.
const DefaultIconSize = 48

// DecodeIcon rasterizes an SVG document to a size×size image. A size of 0
// uses the document's view box, falling back to DefaultIconSize.
func DecodeIcon(r io.Reader, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("flywheel: failed to parse svg: %w", err)
	}
	w, h := size, size
	if size <= 0 {
		w = int(math.Ceil(icon.ViewBox.W))
		h = int(math.Ceil(icon.ViewBox.H))
		if w <= 0 || h <= 0 {
			w, h = DefaultIconSize, DefaultIconSize
		}
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// DecodeIconBytes is DecodeIcon over an in-memory document.
func DecodeIconBytes(data []byte, size int) (*image.RGBA, error) {
	return DecodeIcon(bytes.NewReader(data), size)
}

// LoadIcon reads and rasterizes an SVG file.
func LoadIcon(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flywheel: open icon %s: %w", path, err)
	}
	defer f.Close()
	return DecodeIcon(f, size)
}
