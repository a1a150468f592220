package program

import (
	"fmt"

	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/internal/logging"
	"github.com/richinsley/gophong/mesh"
	"github.com/richinsley/gophong/phong"
	"github.com/richinsley/gophong/shader"
	xlate "github.com/richinsley/gophong/translator"
	gst "github.com/richinsley/goshadertranslator"
)

// Dialect is the GLSL flavour the translator emits.
type Dialect int

const (
	DialectESSL Dialect = iota
	DialectGLSL330
	DialectGLSL410
)

func (d Dialect) String() string {
	switch d {
	case DialectGLSL330:
		return "GLSL 330"
	case DialectGLSL410:
		return "GLSL 410"
	}
	return "ESSL"
}

// DialectFor picks the translator output for a context version.
func DialectFor(v graphics.Version) (Dialect, error) {
	switch {
	case v.ES && v.AtLeast(graphics.GLES300):
		return DialectESSL, nil
	case v.AtLeast(graphics.GL410):
		return DialectGLSL410, nil
	case v.AtLeast(graphics.GL330):
		return DialectGLSL330, nil
	}
	return DialectESSL, fmt.Errorf("unsupported context version %s", v)
}

// Linker builds Phong variants for one GL context. It implements
// phong.Linker and owns every program it links.
type Linker struct {
	version    graphics.Version
	dialect    Dialect
	translator *gst.ShaderTranslator
	logger     logging.Logger
	programs   []*Program
}

var _ phong.Linker = (*Linker)(nil)

// NewLinker creates a linker emitting sources for the context version.
func NewLinker(version graphics.Version, logger logging.Logger) (*Linker, error) {
	dialect, err := DialectFor(version)
	if err != nil {
		return nil, err
	}
	t, err := xlate.Get()
	if err != nil {
		return nil, err
	}
	return &Linker{
		version:    version,
		dialect:    dialect,
		translator: t,
		logger:     logging.OrNop(logger),
	}, nil
}

func (l *Linker) translate(source, stage string) (string, map[string]gst.ShaderVariable, error) {
	outputFormat := gst.OutputFormatESSL
	switch l.dialect {
	case DialectGLSL410:
		outputFormat = gst.OutputFormatGLSL410
	case DialectGLSL330:
		outputFormat = gst.OutputFormatGLSL330
	}
	s, err := l.translator.TranslateShader(source, stage, gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return s.Code, s.Variables, nil
}

// Link translates, compiles and links the variant selected by flags.
func (l *Linker) Link(flags phong.Flags) (phong.Program, error) {
	vsCode, vsVars, err := l.translate(shader.GenerateVertexShader(flags), "vertex")
	if err != nil {
		return nil, err
	}
	fsCode, fsVars, err := l.translate(shader.GenerateFragmentShader(flags), "fragment")
	if err != nil {
		return nil, err
	}

	id, err := NewProgram(vsCode, fsCode, attributeBindings(flags, vsVars)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create phong %s program: %w", flags, err)
	}

	p := newProgram(id, flags, vsVars, fsVars)
	l.programs = append(l.programs, p)
	l.logger.Debugf("linked phong %s as program %d (%s, %s)", flags, id, l.version, l.dialect)
	return p, nil
}

// attributeBindings maps the mesh attribute contract onto the names the
// translator emitted for the vertex stage.
func attributeBindings(flags phong.Flags, vertexVars map[string]gst.ShaderVariable) []Attribute {
	names := mappedNames(vertexVars)
	required := mesh.RequiredAttributes(flags)
	attributes := make([]Attribute, 0, len(required))
	for _, a := range required {
		name := a.Name
		if m, ok := names[name]; ok {
			name = m
		}
		attributes = append(attributes, Attribute{Name: name, Location: a.Location})
	}
	return attributes
}

// Destroy deletes every program the linker produced.
func (l *Linker) Destroy() {
	for _, p := range l.programs {
		p.Destroy()
	}
	l.programs = nil
}
