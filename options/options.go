package options

import (
	"fmt"

	"github.com/richinsley/gophong/phong"
)

type PhongOptions struct {
	Mode            *string // interactive, snapshot or record
	Width           *int
	Height          *int
	Flags           *string // e.g. "diffuse,specular"
	Mesh            *string // sphere or cube
	AmbientTexture  *string
	DiffuseTexture  *string
	SpecularTexture *string
	AmbientColor    *string // "r,g,b" in 0..1
	DiffuseColor    *string
	SpecularColor   *string
	LightColor      *string
	Shininess       *float64
	Duration        *float64
	FPS             *int
	OutputFile      *string
	FFMPEGPath      *string
	Codec           *string
	Headless        *bool // render through EGL without a window (linux only)
	Debug           *bool
}

// Defaults returns options with every field set, matching the command-line
// defaults.
func Defaults() *PhongOptions {
	return &PhongOptions{
		Mode:            ptr("interactive"),
		Width:           ptr(1280),
		Height:          ptr(720),
		Flags:           ptr(""),
		Mesh:            ptr("sphere"),
		AmbientTexture:  ptr(""),
		DiffuseTexture:  ptr(""),
		SpecularTexture: ptr(""),
		AmbientColor:    ptr("0.05,0.05,0.05"),
		DiffuseColor:    ptr("0.8,0.2,0.1"),
		SpecularColor:   ptr("1,1,1"),
		LightColor:      ptr("1,1,1"),
		Shininess:       ptr(80.0),
		Duration:        ptr(10.0),
		FPS:             ptr(60),
		OutputFile:      ptr("output.mp4"),
		FFMPEGPath:      ptr(""),
		Codec:           ptr("h264"),
		Headless:        ptr(false),
		Debug:           ptr(false),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// PhongFlags parses the Flags option, turning on the texture flag of every
// channel that was given a texture file.
func (o *PhongOptions) PhongFlags() (phong.Flags, error) {
	flags, err := phong.ParseFlags(*o.Flags)
	if err != nil {
		return 0, err
	}
	if *o.AmbientTexture != "" {
		flags = flags.Union(phong.NewFlags(phong.AmbientTexture))
	}
	if *o.DiffuseTexture != "" {
		flags = flags.Union(phong.NewFlags(phong.DiffuseTexture))
	}
	if *o.SpecularTexture != "" {
		flags = flags.Union(phong.NewFlags(phong.SpecularTexture))
	}
	return flags, nil
}

// Validate checks option combinations before any GL state is created.
func (o *PhongOptions) Validate() error {
	switch *o.Mode {
	case "interactive", "snapshot", "record":
	default:
		return fmt.Errorf("unknown mode %q", *o.Mode)
	}
	switch *o.Mesh {
	case "sphere", "cube":
	default:
		return fmt.Errorf("unknown mesh %q", *o.Mesh)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	if *o.Mode == "record" && (*o.FPS <= 0 || *o.Duration <= 0) {
		return fmt.Errorf("record mode needs a positive fps and duration")
	}
	if *o.Mode == "interactive" && *o.Headless {
		return fmt.Errorf("interactive mode needs a window, drop -headless")
	}
	if _, err := o.PhongFlags(); err != nil {
		return err
	}
	for _, c := range []*string{o.AmbientColor, o.DiffuseColor, o.SpecularColor, o.LightColor} {
		if _, err := ParseColor(*c); err != nil {
			return err
		}
	}
	return nil
}
