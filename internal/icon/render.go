// Package icon renders the application icon at arbitrary pixel sizes.
//
// The drawing exists twice: as an embedded SVG document (the reference) and
// as a procedural approximation drawn with basic shapes. Which one is used
// is decided once, when the renderer is constructed; every later render goes
// through the same strategy.
package icon

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Renderer produces a square image with an alpha channel at the requested
// pixel size.
type Renderer interface {
	// Render returns a size×size image with transparency.
	// size must be positive.
	Render(size int) (image.Image, error)

	// Name identifies the rendering strategy ("svg" or "procedural").
	Name() string
}

// New selects the rendering strategy for this run: the SVG rasterizer if the
// embedded drawing parses, otherwise the procedural fallback. The check
// happens here, once; Render never probes.
func New() Renderer {
	r, err := newSVG(Source)
	if err != nil {
		return fallback{}
	}
	return r
}

// NewFallback returns the procedural renderer regardless of SVG support.
func NewFallback() Renderer {
	return fallback{}
}

type svgRenderer struct {
	icon *oksvg.SvgIcon
}

func newSVG(src string) (*svgRenderer, error) {
	ic, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return &svgRenderer{icon: ic}, nil
}

func (r *svgRenderer) Name() string { return "svg" }

func (r *svgRenderer) Render(size int) (img image.Image, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: size must be positive, got %d", size)
	}

	// oksvg panics on path data it cannot handle; report that as a
	// rendering failure for this size rather than killing the run.
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("render %dpx: %v", size, p)
		}
	}()

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	r.icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	r.icon.Draw(raster, 1.0)
	return dst, nil
}
