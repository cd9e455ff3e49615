package icon

import (
	"image/color"
	"testing"
)

// rgbaAt returns the premultiplied RGBA value at (x, y).
func rgbaAt(t *testing.T, size, x, y int) color.RGBA {
	t.Helper()
	img, err := NewFallback().Render(size)
	if err != nil {
		t.Fatalf("Render(%d): %v", size, err)
	}
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestFallbackOmitsDotsBelowThreshold(t *testing.T) {
	// At 40px the first trajectory dot would land at (26, 22), inside the
	// pad. Sizes below the simplification threshold must leave it unpainted.
	size := simplifyBelow - 8
	c := rgbaAt(t, size, 680*size/CanvasSize, 580*size/CanvasSize)
	want := color.RGBA{R: 45, G: 45, B: 45, A: 255}
	if c != want {
		t.Errorf("dot position at %dpx = %v, want untouched pad %v", size, c, want)
	}
}

func TestFallbackDrawsDotsAtLargeSize(t *testing.T) {
	size := 256
	c := rgbaAt(t, size, 680*size/CanvasSize, 580*size/CanvasSize)
	if c.B <= c.R+50 {
		t.Errorf("dot position at %dpx = %v, want a blue trajectory dot", size, c)
	}
}

func TestFallbackDrawsHighlightAtLargeSize(t *testing.T) {
	// The white highlight sits at (495, 495) in canvas units. Compare its
	// center against a touch-point pixel outside the highlight radius.
	withHL := rgbaAt(t, 512, 247, 247)
	without := rgbaAt(t, 512, 275, 275)
	if int(withHL.R) <= int(without.R)+15 {
		t.Errorf("highlight R = %d, touch R = %d; want the highlight clearly lighter",
			withHL.R, without.R)
	}
}

func TestFallbackOmitsHighlightBelowMinSize(t *testing.T) {
	// Just under the highlight threshold both sample points lie in the
	// plain touch circle, so they must match.
	size := highlightMinSize - 1
	a := rgbaAt(t, size, 495*size/CanvasSize, 495*size/CanvasSize)
	b := rgbaAt(t, size, size/2, size/2)
	if a != b {
		t.Errorf("at %dpx highlight position = %v, center = %v; want identical", size, a, b)
	}
}

func TestFallbackTinySizes(t *testing.T) {
	for size := 1; size <= 8; size++ {
		img, err := NewFallback().Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		if img.Bounds().Dx() != size {
			t.Errorf("Render(%d) width = %d", size, img.Bounds().Dx())
		}
	}
}
