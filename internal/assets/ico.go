package assets

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// ICOName is the Windows container file name.
const ICOName = "icon.ico"

// WriteICO renders every ICOSizes resolution, normalizes all of them to
// NRGBA and packs them into one icon.ico. Non-fatal: a failure is printed
// and returned, and the rest of the run continues.
func (e *Emitter) WriteICO() error {
	images := make([]image.Image, 0, len(ICOSizes))
	for _, size := range ICOSizes {
		img, err := e.render.Render(size)
		if err != nil {
			err = fmt.Errorf("render %dpx: %w", size, err)
			fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICOName, err)
			return err
		}
		images = append(images, toNRGBA(img))
	}

	path := filepath.Join(e.cfg.OutputDir, ICOName)
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICOName, err)
		return err
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		os.Remove(path)
		err = fmt.Errorf("encode ico: %w", err)
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICOName, err)
		return err
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(e.out, "  %s %s: %v\n", e.fail, ICOName, err)
		return err
	}

	fmt.Fprintf(e.out, "  %s %s (%d sizes embedded)\n", e.ok, ICOName, len(ICOSizes))
	return nil
}

// toNRGBA returns img as *image.NRGBA, converting only when needed. Both
// renderers hand back premultiplied RGBA; the container gets one
// non-premultiplied format with alpha throughout.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, isNRGBA := img.(*image.NRGBA); isNRGBA {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
