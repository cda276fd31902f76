package imageio

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDimensions(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		w, h, err := Dimensions(encodePNG(t, 64, 48))
		if err != nil {
			t.Fatalf("Dimensions() returned error: %v", err)
		}
		if w != 64 || h != 48 {
			t.Errorf("Dimensions() = %dx%d, want 64x48", w, h)
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		img := image.NewRGBA(image.Rect(0, 0, 10, 20))
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			t.Fatalf("encoding test JPEG: %v", err)
		}

		w, h, err := Dimensions(buf.Bytes())
		if err != nil {
			t.Fatalf("Dimensions() returned error: %v", err)
		}
		if w != 10 || h != 20 {
			t.Errorf("Dimensions() = %dx%d, want 10x20", w, h)
		}
	})

	t.Run("gif", func(t *testing.T) {
		var buf bytes.Buffer
		img := image.NewPaletted(image.Rect(0, 0, 5, 5), palette.Plan9)
		if err := gif.Encode(&buf, img, nil); err != nil {
			t.Fatalf("encoding test GIF: %v", err)
		}

		w, h, err := Dimensions(buf.Bytes())
		if err != nil {
			t.Fatalf("Dimensions() returned error: %v", err)
		}
		if w != 5 || h != 5 {
			t.Errorf("Dimensions() = %dx%d, want 5x5", w, h)
		}
	})

	t.Run("garbage fails", func(t *testing.T) {
		if _, _, err := Dimensions([]byte("not an image")); err == nil {
			t.Error("Dimensions(garbage) returned nil error, want error")
		}
	})
}
