package icon

import (
	"image"
	"testing"
)

func TestNewSelectsSVG(t *testing.T) {
	r := New()
	if r.Name() != "svg" {
		t.Errorf("Name() = %q, want %q", r.Name(), "svg")
	}
}

func TestNewSVGBadSource(t *testing.T) {
	if _, err := newSVG("not an svg document"); err == nil {
		t.Fatal("newSVG accepted garbage input")
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, r := range []Renderer{New(), NewFallback()} {
		for _, size := range []int{1, 16, 31, 48, 256} {
			img, err := r.Render(size)
			if err != nil {
				t.Fatalf("%s: Render(%d): %v", r.Name(), size, err)
			}
			b := img.Bounds()
			if b.Dx() != size || b.Dy() != size {
				t.Errorf("%s: Render(%d) bounds = %dx%d, want %dx%d",
					r.Name(), size, b.Dx(), b.Dy(), size, size)
			}
		}
	}
}

func TestRenderAlpha(t *testing.T) {
	for _, r := range []Renderer{New(), NewFallback()} {
		img, err := r.Render(64)
		if err != nil {
			t.Fatalf("%s: Render(64): %v", r.Name(), err)
		}
		if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
			t.Errorf("%s: corner alpha = %d, want 0 (transparent background)", r.Name(), a)
		}
		if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
			t.Errorf("%s: center alpha = 0, want opaque touch point", r.Name())
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, r := range []Renderer{New(), NewFallback()} {
		for _, size := range []int{0, -1} {
			if _, err := r.Render(size); err == nil {
				t.Errorf("%s: Render(%d) succeeded, want error", r.Name(), size)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, r := range []Renderer{New(), NewFallback()} {
		a, err := r.Render(48)
		if err != nil {
			t.Fatalf("%s: Render(48): %v", r.Name(), err)
		}
		b, err := r.Render(48)
		if err != nil {
			t.Fatalf("%s: second Render(48): %v", r.Name(), err)
		}
		if !samePixels(a, b) {
			t.Errorf("%s: two renders of the same size differ", r.Name())
		}
	}
}

func samePixels(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bd := a.Bounds()
	for y := bd.Min.Y; y < bd.Max.Y; y++ {
		for x := bd.Min.X; x < bd.Max.X; x++ {
			ar, ag, ab_, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab_ != bb || aa != ba {
				return false
			}
		}
	}
	return true
}
