// Package assets writes the generated icon files: the flat PNG set, the
// Windows and macOS container files and the Android launcher mipmaps.
package assets

import "path/filepath"

// Entry is one flat PNG artifact: output size and file name.
type Entry struct {
	Size int
	Name string
}

// PNGSpecs lists every flat PNG the bundler expects, matching the icons/
// tree layout (including the @2x, Square* and StoreLogo naming).
var PNGSpecs = []Entry{
	{32, "32x32.png"},
	{128, "128x128.png"},
	{256, "128x128@2x.png"}, // @2x = 256px
	{30, "Square30x30Logo.png"},
	{44, "Square44x44Logo.png"},
	{71, "Square71x71Logo.png"},
	{89, "Square89x89Logo.png"},
	{107, "Square107x107Logo.png"},
	{142, "Square142x142Logo.png"},
	{150, "Square150x150Logo.png"},
	{284, "Square284x284Logo.png"},
	{310, "Square310x310Logo.png"},
	{50, "StoreLogo.png"}, // Windows Store wants 50x50
	{256, "icon.png"},
}

// ICOSizes are the resolutions embedded in icon.ico.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// ICNSSizes are the resolutions embedded in icon.icns, largest last.
var ICNSSizes = []int{16, 32, 64, 128, 256, 512, 1024}

// Density is one Android density tier and its launcher icon size.
type Density struct {
	Name string
	Size int
}

// AndroidDensities maps density tiers to launcher sizes, in ascending order
// so output is deterministic.
var AndroidDensities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// Android launcher file names written per density directory.
const (
	launcherName           = "ic_launcher.png"
	launcherRoundName      = "ic_launcher_round.png"
	launcherForegroundName = "ic_launcher_foreground.png"
)

// Config holds the run parameters. It is built once by the caller and never
// mutated; there is no runtime configurability beyond it.
type Config struct {
	// AppName appears in progress output only.
	AppName string

	// OutputDir receives the flat PNGs and both container files.
	OutputDir string

	// AndroidResDir is the platform res/ tree. It must already exist
	// (created by the android init step); the Android target is skipped
	// when it does not.
	AndroidResDir string
}

// DefaultConfig returns the compiled-in paths for a Tauri project run from
// its root directory.
func DefaultConfig() Config {
	return Config{
		AppName:       "touchpad-mobile",
		OutputDir:     filepath.Join("src-tauri", "icons"),
		AndroidResDir: filepath.Join("src-tauri", "gen", "android", "app", "src", "main", "res"),
	}
}
