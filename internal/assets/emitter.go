package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/appicon/internal/icon"
)

// DirPerm is the mode for created output directories.
const DirPerm = 0o755

// Emitter writes icon artifacts using one renderer and one Config. Every
// Write method is best-effort: failures are printed and reported back, never
// fatal to the rest of the run.
type Emitter struct {
	cfg    Config
	render icon.Renderer
	out    io.Writer

	ok, fail, warn string
}

// NewEmitter returns an Emitter printing progress to out. Unicode markers
// are used when out is a terminal, plain ASCII otherwise.
func NewEmitter(cfg Config, r icon.Renderer, out io.Writer) *Emitter {
	e := &Emitter{cfg: cfg, render: r, out: out}
	e.ok, e.fail, e.warn = markers(out)
	return e
}

// markers picks the per-line status markers for out.
func markers(out io.Writer) (ok, fail, warn string) {
	if f, isFile := out.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		return "✓", "✗", "⚠"
	}
	return "ok", "FAIL", "skip"
}

// savePNG encodes img to path. PNG encoding carries no timestamps, so
// repeated runs produce identical bytes.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
