package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
}

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (OpenGL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows failed: %v", err)
	}
	if c := img.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("top pixel = %v, want blue", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 255 {
		t.Errorf("bottom pixel = %v, want red", c)
	}
}

func TestFlipRowsErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"size mismatch", make([]byte, 10), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipRows(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("", "labelsphere")
	sc.now = fixedClock

	if got, want := sc.GenerateFilename(), "labelsphere_2026-03-14_15-09-26.png"; got != want {
		t.Errorf("GenerateFilename = %q, want %q", got, want)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "labelsphere")
	sc.now = fixedClock

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = 200
	}

	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("expected file in %s, got %s", dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("expected 4x3 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCaptureSameSecond(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "labelsphere")
	sc.now = fixedClock

	pixels := make([]byte, 4)
	first, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("second capture overwrote %s", first)
	}
	if want := filepath.Join(dir, "labelsphere_2026-03-14_15-09-26-1.png"); second != want {
		t.Errorf("second capture = %s, want %s", second, want)
	}
}
