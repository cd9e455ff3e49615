package icon

import "image/color"

// CanvasSize is the edge length of the design canvas. All geometry in the
// embedded drawing (and in the procedural approximation of it) is expressed
// in canvas units and scaled linearly to the requested output size.
const CanvasSize = 1024

// Source is the embedded vector drawing: a dark trackpad with a blue touch
// point, a faint glow, a white highlight and a trail of trajectory dots.
// It avoids filters and gradients so every renderer can handle it.
const Source = `<svg width="1024" height="1024" viewBox="0 0 1024 1024" xmlns="http://www.w3.org/2000/svg">
  <rect x="162" y="262" width="700" height="500" rx="60" fill="#2D2D2D" stroke="#464646" stroke-width="6"/>
  <circle cx="680" cy="580" r="18" fill="#4A90E2" opacity="0.65"/>
  <circle cx="740" cy="630" r="14" fill="#4A90E2" opacity="0.45"/>
  <circle cx="790" cy="675" r="10" fill="#4A90E2" opacity="0.3"/>
  <circle cx="512" cy="512" r="100" fill="#4A90E2" opacity="0.25"/>
  <circle cx="512" cy="512" r="85" fill="#4A90E2" opacity="0.92"/>
  <circle cx="495" cy="495" r="25" fill="white" opacity="0.18"/>
</svg>`

// Palette for the procedural renderer, matching the drawing above.
var (
	colorPad       = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
	colorStroke    = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	colorTouch     = color.NRGBA{R: 74, G: 144, B: 226, A: 235}
	colorGlow      = color.NRGBA{R: 74, G: 144, B: 226, A: 65}
	colorHighlight = color.NRGBA{R: 255, G: 255, B: 255, A: 45}
)

// trajectoryDots are the trail circles in canvas units: center, radius and
// opacity of each.
var trajectoryDots = []struct {
	cx, cy, r int
	opacity   float64
}{
	{680, 580, 18, 0.65},
	{740, 630, 14, 0.45},
	{790, 675, 10, 0.30},
}
