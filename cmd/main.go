package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/vimg/internal/app"
	"github.com/irfansharif/vimg/internal/imageio"
	"github.com/irfansharif/vimg/internal/palette"
)

const logFlags = log.Ltime | log.Lshortfile

const title = "vimg"

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	background = flag.String("background", palette.DefaultBackground, "hex colour shown around the image")
	smooth     = flag.Bool("smooth", true, "smooth (linear) texture filtering")
	vsync      = flag.Bool("vsync", true, "synchronize presentation with the display refresh")
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("VIMG_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <image>\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(flag.CommandLine.Output(), "keys: q quit, f fullscreen, r reset view, 0 actual size")
	fmt.Fprintln(flag.CommandLine.Output(), "mouse: scroll to zoom, drag to pan")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatalf("Expected exactly one image path, got %d arguments", flag.NArg())
	}
	path := flag.Arg(0)

	bg, err := palette.ParseBackground(*background)
	if err != nil {
		log.Fatalf("Invalid -background: %v", err)
	}

	img, format, err := imageio.Load(path)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	runtimeLogger.Printf("Loaded %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// The logical canvas is the desktop resolution; windows of any size show
	// it letterboxed.
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		log.Fatalf("Failed to find a monitor")
	}
	mode := monitor.GetVideoMode()
	canvas, err := app.NewCanvas(mode.Width, mode.Height)
	if err != nil {
		log.Fatalf("Invalid desktop resolution: %v", err)
	}
	runtimeLogger.Printf("Canvas %dx%d", canvas.W, canvas.H)

	backend := &glfwBackend{
		title:      fmt.Sprintf("%s - %s", title, filepath.Base(path)),
		image:      img,
		background: bg,
		smooth:     *smooth,
	}
	application, err := app.NewApp(backend, canvas, img.Bounds().Size(), app.Options{VSync: *vsync})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer application.Close()

	application.Run()
	runtimeLogger.Printf("Exiting after %d frames", application.Frames())
}
