package assets

import (
	"fmt"
	"path/filepath"
)

// WritePNGs renders every entry of PNGSpecs into the output directory and
// returns the number of files written. A failed entry is printed and
// skipped; the remaining entries are still attempted.
func (e *Emitter) WritePNGs() int {
	written := 0
	for _, spec := range PNGSpecs {
		img, err := e.render.Render(spec.Size)
		if err != nil {
			fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, spec.Name, err)
			continue
		}
		if err := savePNG(filepath.Join(e.cfg.OutputDir, spec.Name), img); err != nil {
			fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, spec.Name, err)
			continue
		}
		fmt.Fprintf(e.out, "  %s %-25s (%3dx%d)\n", e.ok, spec.Name, spec.Size, spec.Size)
		written++
	}
	return written
}
