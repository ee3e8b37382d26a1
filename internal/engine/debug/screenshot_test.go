package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "tesseract", FormatPNG)
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue, in OpenGL row order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "tesseract_2024-03-01_12-30-45.000.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	if top != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", top)
	}
	if bottom != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", bottom)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x", FormatPNG)

	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2)
	if err == nil || !strings.Contains(err.Error(), "size mismatch") {
		t.Errorf("expected size mismatch error, got %v", err)
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty framebuffer")
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	sc := NewScreenshotCapture("", "shot", "")
	sc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6e6, time.UTC) }

	if got := sc.filename(); got != "shot_2024-01-02_03-04-05.006.png" {
		t.Errorf("filename = %s", got)
	}
}

func TestCaptureBMP(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot", FormatBMP)

	pixels := []byte{
		10, 20, 30, 255, 40, 50, 60, 255,
		70, 80, 90, 255, 100, 110, 120, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Ext(path) != ".bmp" {
		t.Errorf("extension = %s, want .bmp", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if format != "bmp" || cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("decoded %s %dx%d, want bmp 2x2", format, cfg.Width, cfg.Height)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot", Format("gif"))
	if _, err := sc.CaptureFromPixels(make([]byte, 4), 1, 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}
