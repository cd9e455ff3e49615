package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackmordaunt/icns/v3"
)

// ICNSName is the macOS container file name.
const ICNSName = "icon.icns"

// WriteICNS renders the reference image at the largest ICNSSizes resolution
// and encodes icon.icns from it; the encoder derives every smaller embedded
// representation by downscaling. Non-fatal: a failure is printed and
// returned, and the rest of the run continues.
func (e *Emitter) WriteICNS() error {
	largest := ICNSSizes[len(ICNSSizes)-1]
	img, err := e.render.Render(largest)
	if err != nil {
		err = fmt.Errorf("render %dpx: %w", largest, err)
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICNSName, err)
		return err
	}

	path := filepath.Join(e.cfg.OutputDir, ICNSName)
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICNSName, err)
		return err
	}
	if err := icns.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		err = fmt.Errorf("encode icns: %w", err)
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICNSName, err)
		return err
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICNSName, err)
		return err
	}

	fmt.Fprintf(e.out, "  %s %s (%d sizes embedded)\n", e.ok, ICNSName, len(ICNSSizes))
	return nil
}
