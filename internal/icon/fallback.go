package icon

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// simplifyBelow is the output size under which decorative elements (trail
// dots, highlight) are dropped. Below this they degrade into illegible
// clutter; dropping them is a fixed policy, not a quality heuristic.
const simplifyBelow = 48

// highlightMinSize is the smallest output size that still gets the white
// inner highlight.
const highlightMinSize = 64

// fallback draws the icon with basic shapes instead of rasterizing the SVG.
// Geometry is scaled linearly from the canvas; radii and stroke widths that
// round below one pixel are dropped.
type fallback struct{}

func (fallback) Name() string { return "procedural" }

func (fallback) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: size must be positive, got %d", size)
	}

	dc := gg.NewContext(size, size)
	scale := float64(size) / CanvasSize
	simplify := size < simplifyBelow

	// Trackpad body.
	padX, padY := int(162*scale), int(262*scale)
	padW, padH := int(700*scale), int(500*scale)
	corner := max(1, int(60*scale))
	stroke := max(1, int(6*scale))

	dc.DrawRoundedRectangle(float64(padX), float64(padY), float64(padW), float64(padH), float64(corner))
	dc.SetColor(colorPad)
	dc.FillPreserve()
	dc.SetColor(colorStroke)
	dc.SetLineWidth(float64(stroke))
	dc.Stroke()

	// Trajectory dots.
	if !simplify {
		for _, d := range trajectoryDots {
			x, y, rad := int(float64(d.cx)*scale), int(float64(d.cy)*scale), int(float64(d.r)*scale)
			if rad < 1 {
				continue
			}
			dc.SetRGBA255(int(colorTouch.R), int(colorTouch.G), int(colorTouch.B), int(255*d.opacity))
			dc.DrawCircle(float64(x), float64(y), float64(rad))
			dc.Fill()
		}
	}

	// Touch point: glow under an opaque core.
	cx, cy := size/2, size/2
	outer, inner := int(100*scale), int(85*scale)
	if outer > 0 {
		dc.SetColor(colorGlow)
		dc.DrawCircle(float64(cx), float64(cy), float64(outer))
		dc.Fill()
	}
	if inner > 0 {
		dc.SetColor(colorTouch)
		dc.DrawCircle(float64(cx), float64(cy), float64(inner))
		dc.Fill()
	}

	// Inner highlight.
	if !simplify && size >= highlightMinSize {
		hx, hy, rad := int(495*scale), int(495*scale), int(25*scale)
		if rad > 0 {
			dc.SetColor(colorHighlight)
			dc.DrawCircle(float64(hx), float64(hy), float64(rad))
			dc.Fill()
		}
	}

	return dc.Image(), nil
}
