package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gophong/glfwcontext"
	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/headless"
	"github.com/richinsley/gophong/internal/logging"
	options "github.com/richinsley/gophong/options"
	"github.com/richinsley/gophong/phong"
	renderer "github.com/richinsley/gophong/renderer"
)

func newContext(o *options.PhongOptions, logger logging.Logger) (graphics.Context, error) {
	if *o.Headless {
		return headless.NewHeadless(*o.Width, *o.Height, logger)
	}
	// snapshot and record modes render into a hidden window
	ctx, err := glfwcontext.New(*o.Width, *o.Height, *o.Mode == "interactive")
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// registerVariantKeys maps keys 1 through 8 to the eight Phong variants.
func registerVariantKeys(ctx *glfwcontext.Context, r *renderer.Renderer, logger logging.Logger) {
	for i, flags := range phong.AllFlags() {
		flags := flags
		ctx.RegisterKeyCallback(glfw.Key1+glfw.Key(i), func() {
			if err := r.SetFlags(flags); err != nil {
				logger.Errorf("%v", err)
			}
		})
	}
}

func runPhong(o *options.PhongOptions, logger logging.Logger) {
	ctx, err := newContext(o, logger)
	if err != nil {
		log.Fatalf("Failed to create graphics context: %v", err)
	}

	r, err := renderer.NewRenderer(ctx, o, logger)
	if err != nil {
		ctx.Shutdown()
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	switch *o.Mode {
	case "snapshot":
		if err := r.Snapshot(*o.OutputFile, 0); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
	case "record":
		log.Println("Starting offscreen render loop...")
		if err := r.RunRecord(); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *o.OutputFile)
	default:
		if gctx, ok := ctx.(*glfwcontext.Context); ok {
			registerVariantKeys(gctx, r, logger)
		}
		log.Printf("Starting interactive render loop with phong %s, keys 1-8 switch variants", r.Flags())
		if err := r.Run(); err != nil {
			log.Fatalf("Render loop failed: %v", err)
		}
	}
}

func init() {
	runtime.LockOSThread()
}

func main() {
	o := options.Defaults()
	o.Mode = flag.String("mode", *o.Mode, "Run mode: interactive, snapshot or record")
	o.Width = flag.Int("width", *o.Width, "Width of the output")
	o.Height = flag.Int("height", *o.Height, "Height of the output")
	o.Flags = flag.String("flags", *o.Flags, "Textured channels, e.g. \"diffuse,specular\" or \"none\"")
	o.Mesh = flag.String("mesh", *o.Mesh, "Mesh to draw: sphere or cube")
	o.AmbientTexture = flag.String("ambient", *o.AmbientTexture, "Ambient texture image (enables the ambient flag)")
	o.DiffuseTexture = flag.String("diffuse", *o.DiffuseTexture, "Diffuse texture image (enables the diffuse flag)")
	o.SpecularTexture = flag.String("specular", *o.SpecularTexture, "Specular texture image (enables the specular flag)")
	o.AmbientColor = flag.String("ambient-color", *o.AmbientColor, "Ambient color as r,g,b")
	o.DiffuseColor = flag.String("diffuse-color", *o.DiffuseColor, "Diffuse color as r,g,b")
	o.SpecularColor = flag.String("specular-color", *o.SpecularColor, "Specular color as r,g,b")
	o.LightColor = flag.String("light-color", *o.LightColor, "Light color as r,g,b")
	o.Shininess = flag.Float64("shininess", *o.Shininess, "Specular exponent")
	o.Duration = flag.Float64("duration", *o.Duration, "Duration to record in seconds")
	o.FPS = flag.Int("fps", *o.FPS, "Frames per second for recording")
	o.OutputFile = flag.String("output", *o.OutputFile, "Output file name for recording or snapshot")
	o.FFMPEGPath = flag.String("ffmpeg", *o.FFMPEGPath, "Path to ffmpeg executable")
	o.Codec = flag.String("codec", *o.Codec, "Video codec: h264, hevc or any ffmpeg encoder name")
	o.Headless = flag.Bool("headless", *o.Headless, "Render through EGL without a window (linux only)")
	o.Debug = flag.Bool("debug", *o.Debug, "Enable debug logging")
	var help = flag.Bool("help", false, "Show help message")

	flag.Parse()

	if *help {
		fmt.Println("Phong Material Viewer/Recorder")
		flag.PrintDefaults()
		return
	}

	outputSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "output" {
			outputSet = true
		}
	})
	if *o.Mode == "snapshot" && !outputSet {
		*o.OutputFile = "snapshot.png"
	}

	if err := o.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	logger := logging.NewDefaultLogger("gophong", *o.Debug)

	if !*o.Headless {
		if err := glfwcontext.InitGraphics(); err != nil {
			log.Fatalf("Failed to initialize GLFW: %v", err)
		}
		defer glfwcontext.TerminateGraphics()
	}

	runPhong(o, logger)
}
