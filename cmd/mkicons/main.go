// mkicons generates the full application icon set from the embedded vector
// design: the flat PNG table, icon.ico, icon.icns and the Android launcher
// mipmaps. Output paths are compiled in; run it from the project root.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Mavwarf/appicon/internal/assets"
	"github.com/Mavwarf/appicon/internal/icon"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", os.Args[1])
			fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
			os.Exit(1)
		}
	}
	run()
}

func run() {
	cfg := assets.DefaultConfig()

	// Sanity check only; the run proceeds either way.
	if _, err := os.Stat("src-tauri"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: no src-tauri directory here; writing relative to the current directory anyway\n")
	}

	r := icon.New()
	fmt.Printf("Generating icon set for %q (renderer: %s)\n", cfg.AppName, r.Name())

	if err := os.MkdirAll(cfg.OutputDir, assets.DirPerm); err != nil {
		// Individual writes will fail and be reported; the run still
		// reaches the summary.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	e := assets.NewEmitter(cfg, r, os.Stdout)

	fmt.Println("\nPNG icons:")
	e.WritePNGs()

	fmt.Println("\nWindows icon:")
	e.WriteICO()

	fmt.Println("\nmacOS icon:")
	e.WriteICNS()

	fmt.Println("\nAndroid icons:")
	androidFiles := e.WriteAndroid()

	fmt.Println()
	e.Report(androidFiles).Print(os.Stdout)
}

func printVersion() {
	fmt.Printf("mkicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate the application icon set\n", version)
	fmt.Println(`
Usage:
  mkicons

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Output (relative to the current directory):
  src-tauri/icons/<name>.png                    flat icon set
  src-tauri/icons/icon.ico                      Windows container
  src-tauri/icons/icon.icns                     macOS container
  src-tauri/gen/android/.../mipmap-<density>/   launcher icons

The Android target requires the res/ tree created by the android init step;
it is skipped with a notice when missing. Partial failures never abort the
run and never change the exit code.`)
}
