package shader

import (
	"strings"
	"testing"

	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/phong"
	"github.com/stretchr/testify/assert"
)

func TestDefines(t *testing.T) {
	assert.Empty(t, Defines(0))
	assert.Equal(t, []string{"DIFFUSE_TEXTURE", "TEXTURED"}, Defines(phong.NewFlags(phong.DiffuseTexture)))
	assert.Equal(t,
		[]string{"AMBIENT_TEXTURE", "DIFFUSE_TEXTURE", "SPECULAR_TEXTURE", "TEXTURED"},
		Defines(phong.NewFlags(phong.AmbientTexture, phong.DiffuseTexture, phong.SpecularTexture)))
}

func TestGenerateShaders_VersionFirst(t *testing.T) {
	for _, flags := range phong.AllFlags() {
		assert.True(t, strings.HasPrefix(GenerateVertexShader(flags), "#version 300 es\n"), flags.String())
		assert.True(t, strings.HasPrefix(GenerateFragmentShader(flags), "#version 300 es\n"), flags.String())
	}
}

func TestGenerateShaders_DeclareEveryUniform(t *testing.T) {
	src := GenerateVertexShader(0) + GenerateFragmentShader(0)
	for _, name := range []string{
		phong.TransformationMatrixName, phong.ProjectionMatrixName, phong.NormalMatrixName,
		phong.LightPositionName, phong.LightColorName, phong.AmbientColorName,
		phong.DiffuseColorName, phong.SpecularColorName, phong.ShininessName,
		phong.AmbientTextureName, phong.DiffuseTextureName, phong.SpecularTextureName,
	} {
		assert.Contains(t, src, " "+name+";", name)
	}
}

func TestGenerateFragmentShader_DefinesPerFlag(t *testing.T) {
	src := GenerateFragmentShader(phong.NewFlags(phong.SpecularTexture))
	assert.Contains(t, src, "#define SPECULAR_TEXTURE\n")
	assert.Contains(t, src, "#define TEXTURED\n")
	assert.NotContains(t, src, "#define AMBIENT_TEXTURE")
	assert.NotContains(t, src, "#define DIFFUSE_TEXTURE")

	colored := GenerateFragmentShader(0)
	assert.NotContains(t, colored, "#define")
}

func TestGenerateVertexShader_AttributeLocations(t *testing.T) {
	src := GenerateVertexShader(0)
	assert.Contains(t, src, "layout(location = 0) in highp vec4 position;")
	assert.Contains(t, src, "layout(location = 1) in mediump vec3 normal;")
	assert.Contains(t, src, "layout(location = 2) in mediump vec2 textureCoordinates;")
}

func TestBlitShaders(t *testing.T) {
	tests := []struct {
		version graphics.Version
		header  string
	}{
		{graphics.GL410, "#version 410 core\n"},
		{graphics.Version{Major: 4, Minor: 6}, "#version 410 core\n"},
		{graphics.GL330, "#version 330 core\n"},
		{graphics.Version{Major: 4, Minor: 0}, "#version 330 core\n"},
		{graphics.GLES300, "#version 300 es\n"},
	}
	for _, tt := range tests {
		vs := GenerateBlitVertexShader(tt.version)
		fs := GetBlitFragmentShader(false, tt.version)
		assert.True(t, strings.HasPrefix(vs, tt.header), tt.version.String())
		assert.True(t, strings.HasPrefix(fs, tt.header), tt.version.String())
	}

	assert.Contains(t, GetBlitFragmentShader(true, graphics.GL410), "1.0 - frag_uv.y")
	assert.NotContains(t, GetBlitFragmentShader(false, graphics.GLES300), "1.0 - frag_uv.y")
	assert.Contains(t, GetBlitFragmentShader(false, graphics.GLES300), "precision mediump float;")
	assert.NotContains(t, GetBlitFragmentShader(false, graphics.GL330), "precision")
}
