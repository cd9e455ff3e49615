package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// WriteAndroid writes the launcher icon set under the Android res/ tree:
// per density tier, ic_launcher.png, ic_launcher_round.png (currently the
// same bytes — no circular mask is applied) and ic_launcher_foreground.png.
// Returns the number of files written.
//
// The res/ tree itself is an external precondition, created by the android
// init step; when it is missing the whole target is skipped with a hint and
// zero files are written. A failing density tier does not stop the others.
func (e *Emitter) WriteAndroid() int {
	if _, err := os.Stat(e.cfg.AndroidResDir); err != nil {
		fmt.Fprintf(e.out, "  %s android res directory missing: %s\n", e.warn, e.cfg.AndroidResDir)
		fmt.Fprintf(e.out, "    run the android init step first (e.g. 'pnpm tauri android init')\n")
		return 0
	}

	written := 0
	for _, d := range AndroidDensities {
		dir := filepath.Join(e.cfg.AndroidResDir, "mipmap-"+d.Name)
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			fmt.Fprintf(e.out, "  %s mipmap-%s: %v\n", e.fail, d.Name, err)
			continue
		}

		img, err := e.render.Render(d.Size)
		if err != nil {
			fmt.Fprintf(e.out, "  %s mipmap-%s: %v\n", e.fail, d.Name, err)
			continue
		}

		// One encode, two files: the round variant is defined as an
		// exact copy of the standard launcher for now.
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			fmt.Fprintf(e.out, "  %s mipmap-%s: %v\n", e.fail, d.Name, err)
			continue
		}
		for _, name := range []string{launcherName, launcherRoundName} {
			if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
				fmt.Fprintf(e.out, "  %s %s/%s: %v\n", e.fail, d.Name, name, err)
				continue
			}
			fmt.Fprintf(e.out, "  %s %s/%s (%dx%d)\n", e.ok, d.Name, name, d.Size, d.Size)
			written++
		}

		fg := foreground(img)
		if err := savePNG(filepath.Join(dir, launcherForegroundName), fg); err != nil {
			fmt.Fprintf(e.out, "  %s %s/%s: %v\n", e.fail, d.Name, launcherForegroundName, err)
			continue
		}
		fmt.Fprintf(e.out, "  %s %s/%s (%dx%d)\n", e.ok, d.Name, launcherForegroundName, d.Size, d.Size)
		written++
	}
	return written
}

// foreground composites img onto a fully transparent canvas of the same
// size, using the image's own alpha as the mask. With an alpha source this
// changes nothing today; it is the seam where an adaptive-icon foreground
// treatment would go.
func foreground(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.DrawMask(dst, b, img, b.Min, img, b.Min, draw.Over)
	return dst
}
