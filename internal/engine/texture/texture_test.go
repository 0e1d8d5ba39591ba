package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestToRGBAPassthrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	if got := ToRGBA(img); got != img {
		t.Error("expected packed RGBA image to be returned as is")
	}
}

func TestToRGBAConverts(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.Set(2, 3, color.NRGBA{R: 255, A: 255})

	got := ToRGBA(src)
	if got.Rect != image.Rect(0, 0, 3, 2) {
		t.Fatalf("rect = %v, want 3x2 at origin", got.Rect)
	}
	if c := got.RGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", c)
	}
}

func TestToRGBASubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	got := ToRGBA(sub)
	if got == sub {
		t.Error("sub image should be repacked")
	}
	if got.Stride != 4*2 {
		t.Errorf("stride = %d, want 8", got.Stride)
	}
}
