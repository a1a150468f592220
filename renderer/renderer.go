package renderer

import (
	"fmt"
	"image/png"
	"os"
	"runtime"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/internal/logging"
	"github.com/richinsley/gophong/mesh"
	options "github.com/richinsley/gophong/options"
	"github.com/richinsley/gophong/phong"
	"github.com/richinsley/gophong/program"
	shader "github.com/richinsley/gophong/shader"
	"github.com/richinsley/gophong/texture"
)

// Material is the lighting input pushed to the active variant every frame.
type Material struct {
	Ambient   phong.Color3
	Diffuse   phong.Color3
	Specular  phong.Color3
	Light     phong.Color3
	Shininess float32
}

func materialFromOptions(o *options.PhongOptions) (Material, error) {
	var m Material
	var err error
	if m.Ambient, err = options.ParseColor(*o.AmbientColor); err != nil {
		return m, err
	}
	if m.Diffuse, err = options.ParseColor(*o.DiffuseColor); err != nil {
		return m, err
	}
	if m.Specular, err = options.ParseColor(*o.SpecularColor); err != nil {
		return m, err
	}
	if m.Light, err = options.ParseColor(*o.LightColor); err != nil {
		return m, err
	}
	m.Shininess = float32(*o.Shininess)
	return m, nil
}

// meshData builds the geometry named by the Mesh option.
func meshData(name string) (*mesh.Data, error) {
	switch name {
	case "sphere":
		return mesh.UVSphere(32, 64), nil
	case "cube":
		return mesh.Cube(), nil
	}
	return nil, fmt.Errorf("unknown mesh %q", name)
}

// blitUnit is past the Phong units so presenting never evicts the material
// textures from the binder cache. The Phong programs never sample it.
const blitUnit = phong.SpecularTextureUnit + 1

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// Renderer draws one mesh with the Phong variant selected by its flags.
type Renderer struct {
	context     graphics.Context
	options     *options.PhongOptions
	logger      logging.Logger
	linker      *program.Linker
	variants    *phong.VariantCache
	binder      *texture.Binder
	mesh        *mesh.Mesh
	textures    [3]*texture.Texture2D
	material    Material
	camera      Camera
	flags       phong.Flags
	version     graphics.Version
	offscreen   *Offscreen
	blitProgram uint32
	quadVAO     uint32
	quadVBO     uint32
	width       int
	height      int
	recordMode  bool
}

// NewRenderer builds every GL resource on ctx, which must be current on the
// calling thread. On error ctx is left to the caller.
func NewRenderer(ctx graphics.Context, o *options.PhongOptions, logger logging.Logger) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		options:    o,
		logger:     logging.OrNop(logger),
		binder:     texture.NewBinder(),
		camera:     DefaultCamera(),
		width:      *o.Width,
		height:     *o.Height,
		recordMode: *o.Mode != "interactive",
	}
	r.context.MakeCurrent()

	info, err := graphics.QueryInfo()
	if err != nil {
		return nil, err
	}
	r.logger.Infof("%s on %s (%s), GLSL %s", info.VersionText, info.Renderer, info.Vendor, info.GLSL)

	version := info.Version.SupportedVersion(graphics.GL410, graphics.GL330, graphics.GLES300)
	if version == (graphics.Version{}) {
		return nil, fmt.Errorf("context %s is too old, need %s, %s or %s", info.Version, graphics.GL410, graphics.GL330, graphics.GLES300)
	}
	r.version = info.Version
	if r.context.IsGLES() != info.Version.ES {
		r.logger.Warnf("context reports %s, expected the other API family", info.Version)
	}

	if r.material, err = materialFromOptions(o); err != nil {
		return nil, err
	}
	if r.flags, err = o.PhongFlags(); err != nil {
		return nil, err
	}

	r.linker, err = program.NewLinker(version, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create linker: %w", err)
	}
	r.variants = phong.NewVariantCache(r.linker, r.binder, phong.WithLogger(r.logger))

	if err := r.loadTextures(); err != nil {
		r.release()
		return nil, err
	}

	data, err := meshData(*o.Mesh)
	if err != nil {
		r.release()
		return nil, err
	}
	// every variant can be selected later, so upload the texture coordinates too
	r.mesh, err = mesh.Upload(data, phong.NewFlags(phong.AmbientTexture, phong.DiffuseTexture, phong.SpecularTexture))
	if err != nil {
		r.release()
		return nil, err
	}

	width, height := r.renderSize()
	r.offscreen, err = NewOffscreen(width, height)
	if err != nil {
		r.release()
		return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
	}

	if err := r.initBlit(); err != nil {
		r.release()
		return nil, err
	}

	if err := r.SetFlags(r.flags); err != nil {
		r.release()
		return nil, err
	}
	return r, nil
}

// loadTextures loads the configured image for each channel. Channels without
// an image get a solid texture of their color so every variant can sample.
func (r *Renderer) loadTextures() error {
	paths := [3]string{*r.options.AmbientTexture, *r.options.DiffuseTexture, *r.options.SpecularTexture}
	colors := [3]phong.Color3{r.material.Ambient, r.material.Diffuse, r.material.Specular}
	for i, path := range paths {
		var tex *texture.Texture2D
		var err error
		if path != "" {
			tex, err = texture.Load(path, texture.DefaultSampler())
		} else {
			tex, err = texture.Solid(colors[i])
		}
		if err != nil {
			return fmt.Errorf("failed to create texture %d: %w", i, err)
		}
		r.textures[i] = tex
		if path != "" {
			w, h := tex.Size()
			r.logger.Debugf("loaded %s (%dx%d) on unit %d", path, w, h, i)
		}
	}
	return nil
}

func (r *Renderer) initBlit() error {
	var err error
	r.blitProgram, err = program.NewProgram(
		shader.GenerateBlitVertexShader(r.version),
		shader.GetBlitFragmentShader(false, r.version),
		program.Attribute{Name: "in_vert", Location: 0},
	)
	if err != nil {
		return fmt.Errorf("failed to create blit program: %w", err)
	}
	program.UseProgram(r.blitProgram)
	gl.Uniform1i(gl.GetUniformLocation(r.blitProgram, gl.Str("u_texture\x00")), blitUnit)
	program.UseProgram(0)

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// renderSize is fixed in record and snapshot modes and follows the window
// otherwise.
func (r *Renderer) renderSize() (int, int) {
	if r.recordMode {
		return r.width, r.height
	}
	return r.context.GetFramebufferSize()
}

// SetFlags switches to the variant for flags, linking it on first use. On
// failure the previous variant stays active.
func (r *Renderer) SetFlags(flags phong.Flags) error {
	if _, err := r.variants.Get(flags); err != nil {
		return fmt.Errorf("failed to build phong %s: %w", flags, err)
	}
	if flags != r.flags {
		r.logger.Infof("switched to phong %s (%d variants linked)", flags, r.variants.Len())
	}
	r.flags = flags
	return nil
}

func (r *Renderer) Flags() phong.Flags {
	return r.flags
}

// RenderFrame draws the scene at time t into the offscreen target.
func (r *Renderer) RenderFrame(t float64) error {
	p, err := r.variants.Get(r.flags)
	if err != nil {
		return err
	}

	width, height := r.renderSize()
	if width == 0 || height == 0 {
		return nil
	}
	if r.offscreen.Resize(width, height) {
		r.binder.Reset()
	}

	r.offscreen.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	modelView := r.camera.View().Mul4(ModelMatrix(t))
	m := r.material

	p.Program().Use()
	p.SetTransformationMatrix(modelView).
		SetNormalMatrix(NormalMatrix(modelView)).
		SetProjectionMatrix(r.camera.Projection(width, height)).
		SetLightPosition(LightPosition(t)).
		SetLightColor(m.Light).
		SetShininess(m.Shininess).
		SetAmbientColor(m.Ambient).
		SetDiffuseColor(m.Diffuse).
		SetSpecularColor(m.Specular).
		SetTextures(r.textures[0], r.textures[1], r.textures[2])
	r.mesh.Draw()

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	r.offscreen.Unbind()
	return nil
}

// blit presents the offscreen target on the default framebuffer.
func (r *Renderer) blit() {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	program.UseProgram(r.blitProgram)
	r.binder.Bind(blitUnit, r.offscreen)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Run is the interactive loop. It returns when the window is closed.
func (r *Renderer) Run() error {
	startTime := r.context.Time()
	for !r.context.ShouldClose() {
		if err := r.RenderFrame(r.context.Time() - startTime); err != nil {
			return err
		}
		r.blit()
		r.context.EndFrame()
	}
	return nil
}

// Snapshot renders a single frame at time t and writes it to path as PNG.
func (r *Renderer) Snapshot(path string, t float64) error {
	if err := r.RenderFrame(t); err != nil {
		return err
	}
	img := r.offscreen.Image()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	r.logger.Infof("wrote %s (%dx%d)", path, img.Rect.Dx(), img.Rect.Dy())
	return nil
}

// RunRecord renders Duration seconds at FPS and encodes them with ffmpeg.
func (r *Renderer) RunRecord() error {
	fps := *r.options.FPS
	totalFrames := int(*r.options.Duration * float64(fps))
	timeStep := 1.0 / float64(fps)

	r.logger.Infof("recording %d frames to %s", totalFrames, *r.options.OutputFile)
	enc := startEncoder(r.options, r.width, r.height, runtime.GOOS)

	var pixels []byte
	var frameErr error
	for i := 0; i < totalFrames; i++ {
		if frameErr = r.RenderFrame(float64(i) * timeStep); frameErr != nil {
			break
		}
		pixels = r.offscreen.ReadPixels(pixels)
		if frameErr = enc.WriteFrame(pixels); frameErr != nil {
			frameErr = fmt.Errorf("failed to write frame %d: %w", i, frameErr)
			break
		}
		if r.logger.DebugEnabled() && i%fps == 0 {
			r.logger.Debugf("frame %d/%d", i, totalFrames)
		}
	}

	encErr := enc.Close()
	if frameErr != nil {
		return frameErr
	}
	return encErr
}

// Shutdown releases every GL resource and the context.
func (r *Renderer) Shutdown() {
	r.release()
	r.context.Shutdown()
}

func (r *Renderer) release() {
	r.binder.Unbind()
	if r.linker != nil {
		r.linker.Destroy()
	}
	if r.variants != nil {
		r.variants.Reset()
	}
	for _, tex := range r.textures {
		if tex != nil {
			tex.Destroy()
		}
	}
	if r.mesh != nil {
		r.mesh.Destroy()
	}
	if r.offscreen != nil {
		r.offscreen.Destroy()
	}
	if r.blitProgram != 0 {
		gl.DeleteProgram(r.blitProgram)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
		gl.DeleteBuffers(1, &r.quadVBO)
	}
}
