package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Report summarizes what actually landed on disk after a run. It checks file
// existence only; it does not verify pixel content.
type Report struct {
	// Generated counts desktop artifacts present: *.png in the output
	// directory plus the container files that exist.
	Generated int

	// Expected is the desktop artifact total: the PNG table plus both
	// containers.
	Expected int

	// AndroidFiles is the launcher-file count reported by WriteAndroid.
	AndroidFiles int

	OutputDir     string
	AndroidResDir string
}

// Report scans the output directory and returns the run summary.
// androidFiles is WriteAndroid's return value; the Android tree is not
// rescanned.
func (e *Emitter) Report(androidFiles int) Report {
	r := Report{
		Expected:      len(PNGSpecs) + 2, // + ICO + ICNS
		AndroidFiles:  androidFiles,
		OutputDir:     e.cfg.OutputDir,
		AndroidResDir: e.cfg.AndroidResDir,
	}

	pngs, err := filepath.Glob(filepath.Join(e.cfg.OutputDir, "*.png"))
	if err == nil {
		r.Generated = len(pngs)
	}
	for _, name := range []string{ICOName, ICNSName} {
		if _, err := os.Stat(filepath.Join(e.cfg.OutputDir, name)); err == nil {
			r.Generated++
		}
	}
	return r
}

// Print writes the human-readable summary block.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 55))
	fmt.Fprintf(w, "Generated %d/%d desktop icon files\n", r.Generated, r.Expected)
	fmt.Fprintf(w, "Desktop output: %s\n", r.OutputDir)
	if r.AndroidFiles > 0 {
		fmt.Fprintf(w, "Android launcher files: %d\n", r.AndroidFiles)
		fmt.Fprintf(w, "Android output: %s\n", r.AndroidResDir)
	}
	fmt.Fprintln(w, `
Notes:
  128x128@2x.png is 256x256 (retina naming)
  StoreLogo.png is 50x50 (Windows Store requirement)
  sizes below 48px drop fine detail for legibility
  regenerate Android icons after every android init`)
	fmt.Fprintln(w, strings.Repeat("=", 55))
}
