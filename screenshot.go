package flywheel

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultScreenshotDir = "screenshots"

// pixelReader is implemented by surfaces whose pixels can be read back as
// premultiplied RGBA bytes.
type pixelReader interface {
	readPixels() (pix []byte, w, h int)
}

func (s *SoftwareSurface) readPixels() ([]byte, int, int) {
	w, h := s.Size()
	return s.img.Pix, w, h
}

func (s *EbitenSurface) readPixels() ([]byte, int, int) {
	pix := make([]byte, 4*s.w*s.h)
	s.image.ReadPixels(pix)
	return pix, s.w, s.h
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Render. The PNG is written to ScreenshotDir with a timestamped name.
func (f *Flywheel) Screenshot(label string) {
	f.screenshotQueue = append(f.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot of the rendered frame.
func (f *Flywheel) flushScreenshots(out Surface) {
	if len(f.screenshotQueue) == 0 {
		return
	}
	defer func() { f.screenshotQueue = f.screenshotQueue[:0] }()

	if err := os.MkdirAll(f.ScreenshotDir, 0o755); err != nil {
		f.logger.Error("screenshot", slog.String("dir", f.ScreenshotDir), slog.Any("error", err))
		return
	}
	img, err := SurfaceImage(out)
	if err != nil {
		f.logger.Error("screenshot", slog.Any("error", err))
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range f.screenshotQueue {
		path := filepath.Join(f.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			f.logger.Error("screenshot", slog.Any("error", err))
			continue
		}
		f.logger.Info("screenshot saved", slog.String("path", path))
	}
}

// SurfaceImage copies a surface into a straight-alpha image.
func SurfaceImage(s Surface) (*image.NRGBA, error) {
	pr, ok := s.(pixelReader)
	if !ok {
		return nil, fmt.Errorf("flywheel: surface %T cannot be read back", s)
	}
	pix, w, h := pr.readPixels()
	return unpremultiply(pix, w, h), nil
}

// SavePNG writes a surface to a PNG file.
func SavePNG(path string, s Surface) error {
	img, err := SurfaceImage(s)
	if err != nil {
		return err
	}
	return writePNG(path, img)
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flywheel: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("flywheel: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
