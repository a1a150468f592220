// Package phong configures the Phong illumination program: ambient, diffuse
// and specular terms, each driven either by a uniform color or by a texture
// selected when the program is constructed.
//
// For a colored mesh provide position and normal attributes and call at
// least SetTransformationMatrix, SetNormalMatrix, SetProjectionMatrix,
// SetDiffuseColor and SetLightPosition. Textured variants also need texture
// coordinates, plus the matching subset of SetAmbientTexture,
// SetDiffuseTexture and SetSpecularTexture at draw time.
package phong

import (
	"errors"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gophong/internal/logging"
)

// Uniform names shared with the generated shader sources.
const (
	TransformationMatrixName = "transformationMatrix"
	ProjectionMatrixName     = "projectionMatrix"
	NormalMatrixName         = "normalMatrix"
	LightPositionName        = "light"
	LightColorName           = "lightColor"
	AmbientColorName         = "ambientColor"
	DiffuseColorName         = "diffuseColor"
	SpecularColorName        = "specularColor"
	ShininessName            = "shininess"

	AmbientTextureName  = "ambientTexture"
	DiffuseTextureName  = "diffuseTexture"
	SpecularTextureName = "specularTexture"
)

// Values the parameters hold until a setter overrides them.
var (
	DefaultAmbientColor  = Color3{0, 0, 0}
	DefaultSpecularColor = Color3{1, 1, 1}
	DefaultLightColor    = Color3{1, 1, 1}
)

const DefaultShininess float32 = 80.0

var ErrNilLinker = errors.New("phong: nil linker")

type uniforms struct {
	transformationMatrix Uniform
	projectionMatrix     Uniform
	normalMatrix         Uniform
	lightPosition        Uniform
	lightColor           Uniform
	ambientColor         Uniform
	diffuseColor         Uniform
	specularColor        Uniform
	shininess            Uniform
}

// Phong is one linked variant of the Phong program. Flags and uniform
// handles are fixed at construction; all setters return the receiver so
// calls can be chained.
type Phong struct {
	flags    Flags
	program  Program
	binder   TextureBinder
	uniforms uniforms
	logger   logging.Logger
}

type Option func(*Phong)

// WithLogger sets the logger used to report misuse such as binding a texture
// to a channel the variant reads from a color.
func WithLogger(l logging.Logger) Option {
	return func(p *Phong) {
		p.logger = l
	}
}

// New links the variant selected by flags and resolves its parameters. Link
// errors are returned exactly as the linker reported them.
func New(linker Linker, binder TextureBinder, flags Flags, opts ...Option) (*Phong, error) {
	if linker == nil {
		return nil, ErrNilLinker
	}
	flags = flags.Intersect(allFlags)

	prog, err := linker.Link(flags)
	if err != nil {
		return nil, err
	}

	p := &Phong{
		flags:   flags,
		program: prog,
		binder:  binder,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.OrNop(p.logger)

	prog.Use()
	p.uniforms = uniforms{
		transformationMatrix: prog.UniformLocation(TransformationMatrixName),
		projectionMatrix:     prog.UniformLocation(ProjectionMatrixName),
		normalMatrix:         prog.UniformLocation(NormalMatrixName),
		lightPosition:        prog.UniformLocation(LightPositionName),
		lightColor:           prog.UniformLocation(LightColorName),
		ambientColor:         prog.UniformLocation(AmbientColorName),
		diffuseColor:         prog.UniformLocation(DiffuseColorName),
		specularColor:        prog.UniformLocation(SpecularColorName),
		shininess:            prog.UniformLocation(ShininessName),
	}

	// Samplers read the units the setters bind to.
	if flags.Has(AmbientTexture) {
		prog.SetInt(prog.UniformLocation(AmbientTextureName), AmbientTextureUnit)
	}
	if flags.Has(DiffuseTexture) {
		prog.SetInt(prog.UniformLocation(DiffuseTextureName), DiffuseTextureUnit)
	}
	if flags.Has(SpecularTexture) {
		prog.SetInt(prog.UniformLocation(SpecularTextureName), SpecularTextureUnit)
	}

	prog.SetColor3(p.uniforms.ambientColor, DefaultAmbientColor)
	prog.SetColor3(p.uniforms.specularColor, DefaultSpecularColor)
	prog.SetColor3(p.uniforms.lightColor, DefaultLightColor)
	prog.SetFloat(p.uniforms.shininess, DefaultShininess)

	p.logger.Debugf("phong variant %s linked", flags)
	return p, nil
}

// Flags returns the flags the variant was built with.
func (p *Phong) Flags() Flags {
	return p.flags
}

// Program returns the linked program, for making it current before a draw.
func (p *Phong) Program() Program {
	return p.program
}

// Uniform returns the handle resolved for one of the nine parameter names,
// or NoUniform for any other name. Names are the GLSL uniform names;
// "lightPosition" is accepted for the light uniform as well.
func (p *Phong) Uniform(name string) Uniform {
	switch name {
	case TransformationMatrixName:
		return p.uniforms.transformationMatrix
	case ProjectionMatrixName:
		return p.uniforms.projectionMatrix
	case NormalMatrixName:
		return p.uniforms.normalMatrix
	case LightPositionName, "lightPosition":
		return p.uniforms.lightPosition
	case LightColorName:
		return p.uniforms.lightColor
	case AmbientColorName:
		return p.uniforms.ambientColor
	case DiffuseColorName:
		return p.uniforms.diffuseColor
	case SpecularColorName:
		return p.uniforms.specularColor
	case ShininessName:
		return p.uniforms.shininess
	}
	return NoUniform
}

// SetAmbientColor has no effect if AmbientTexture is set.
func (p *Phong) SetAmbientColor(c Color3) *Phong {
	if !p.flags.Has(AmbientTexture) {
		p.program.SetColor3(p.uniforms.ambientColor, c)
	}
	return p
}

// SetDiffuseColor has no effect if DiffuseTexture is set.
func (p *Phong) SetDiffuseColor(c Color3) *Phong {
	if !p.flags.Has(DiffuseTexture) {
		p.program.SetColor3(p.uniforms.diffuseColor, c)
	}
	return p
}

// SetSpecularColor has no effect if SpecularTexture is set.
func (p *Phong) SetSpecularColor(c Color3) *Phong {
	if !p.flags.Has(SpecularTexture) {
		p.program.SetColor3(p.uniforms.specularColor, c)
	}
	return p
}

// SetAmbientTexture binds tex to AmbientTextureUnit. It only has effect if
// AmbientTexture is set; otherwise the call is dropped and logged.
func (p *Phong) SetAmbientTexture(tex Texture) *Phong {
	p.bindGated(AmbientTexture, AmbientTextureUnit, tex)
	return p
}

// SetDiffuseTexture binds tex to DiffuseTextureUnit. It only has effect if
// DiffuseTexture is set.
func (p *Phong) SetDiffuseTexture(tex Texture) *Phong {
	p.bindGated(DiffuseTexture, DiffuseTextureUnit, tex)
	return p
}

// SetSpecularTexture binds tex to SpecularTextureUnit. It only has effect if
// SpecularTexture is set.
func (p *Phong) SetSpecularTexture(tex Texture) *Phong {
	p.bindGated(SpecularTexture, SpecularTextureUnit, tex)
	return p
}

func (p *Phong) bindGated(flag Flag, unit int, tex Texture) {
	if isNilTexture(tex) {
		return
	}
	if !p.flags.Has(flag) {
		p.logger.Warnf("phong %s: texture for unit %d ignored, variant does not sample it", p.flags, unit)
		return
	}
	if p.binder != nil {
		p.binder.Bind(unit, tex)
	}
}

// SetTextures binds any subset of the three textures in one binder call.
// Textures for channels the variant does not sample, and nil textures, are
// skipped.
func (p *Phong) SetTextures(ambient, diffuse, specular Texture) *Phong {
	textures := []Texture{ambient, diffuse, specular}
	gates := [...]Flag{AmbientTexture, DiffuseTexture, SpecularTexture}

	bound := false
	for i, tex := range textures {
		if isNilTexture(tex) || !p.flags.Has(gates[i]) {
			textures[i] = nil
			continue
		}
		bound = true
	}
	if bound && p.binder != nil {
		p.binder.BindTextures(AmbientTextureUnit, textures)
	}
	return p
}

func (p *Phong) SetTransformationMatrix(m mgl32.Mat4) *Phong {
	p.program.SetMat4(p.uniforms.transformationMatrix, m)
	return p
}

// SetNormalMatrix does not need a normalized matrix, the shader renormalizes.
func (p *Phong) SetNormalMatrix(m mgl32.Mat3) *Phong {
	p.program.SetMat3(p.uniforms.normalMatrix, m)
	return p
}

func (p *Phong) SetProjectionMatrix(m mgl32.Mat4) *Phong {
	p.program.SetMat4(p.uniforms.projectionMatrix, m)
	return p
}

func (p *Phong) SetLightPosition(v mgl32.Vec3) *Phong {
	p.program.SetVec3(p.uniforms.lightPosition, v)
	return p
}

// SetLightColor defaults to white.
func (p *Phong) SetLightColor(c Color3) *Phong {
	p.program.SetColor3(p.uniforms.lightColor, c)
	return p
}

// SetShininess sets the specular exponent; larger values give a harder
// surface with a smaller highlight. Defaults to 80.
func (p *Phong) SetShininess(v float32) *Phong {
	p.program.SetFloat(p.uniforms.shininess, v)
	return p
}

// isNilTexture also catches typed nil pointers stored in the interface.
func isNilTexture(tex Texture) bool {
	if tex == nil {
		return true
	}
	v := reflect.ValueOf(tex)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
