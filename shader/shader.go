package shader

import (
	"fmt"
	"strings"

	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/phong"
)

// Phong sources are written in the WebGL2 dialect (GLSL ES 3.00) and
// translated for the current context before compiling.

const phongVertexBody = `
uniform highp mat4 transformationMatrix;
uniform highp mat4 projectionMatrix;
uniform mediump mat3 normalMatrix;
uniform highp vec3 light;

layout(location = 0) in highp vec4 position;
layout(location = 1) in mediump vec3 normal;
#ifdef TEXTURED
layout(location = 2) in mediump vec2 textureCoordinates;
out mediump vec2 interpolatedTextureCoordinates;
#endif

out mediump vec3 transformedNormal;
out highp vec3 lightDirection;
out highp vec3 cameraDirection;

void main() {
    highp vec4 transformedPosition4 = transformationMatrix*position;
    highp vec3 transformedPosition = transformedPosition4.xyz/transformedPosition4.w;

    transformedNormal = normalMatrix*normal;
    lightDirection = normalize(light - transformedPosition);
    cameraDirection = -transformedPosition;

    gl_Position = projectionMatrix*transformedPosition4;

#ifdef TEXTURED
    interpolatedTextureCoordinates = textureCoordinates;
#endif
}
`

const phongFragmentBody = `
#ifdef AMBIENT_TEXTURE
uniform lowp sampler2D ambientTexture;
#else
uniform lowp vec3 ambientColor;
#endif

#ifdef DIFFUSE_TEXTURE
uniform lowp sampler2D diffuseTexture;
#else
uniform lowp vec3 diffuseColor;
#endif

#ifdef SPECULAR_TEXTURE
uniform lowp sampler2D specularTexture;
#else
uniform lowp vec3 specularColor;
#endif

uniform lowp vec3 lightColor;
uniform mediump float shininess;

in mediump vec3 transformedNormal;
in highp vec3 lightDirection;
in highp vec3 cameraDirection;
#ifdef TEXTURED
in mediump vec2 interpolatedTextureCoordinates;
#endif

out lowp vec4 color;

void main() {
#ifdef AMBIENT_TEXTURE
    lowp vec3 finalAmbientColor = texture(ambientTexture, interpolatedTextureCoordinates).rgb;
#else
    lowp vec3 finalAmbientColor = ambientColor;
#endif
#ifdef DIFFUSE_TEXTURE
    lowp vec3 finalDiffuseColor = texture(diffuseTexture, interpolatedTextureCoordinates).rgb;
#else
    lowp vec3 finalDiffuseColor = diffuseColor;
#endif
#ifdef SPECULAR_TEXTURE
    lowp vec3 finalSpecularColor = texture(specularTexture, interpolatedTextureCoordinates).rgb;
#else
    lowp vec3 finalSpecularColor = specularColor;
#endif

    lowp vec3 result = finalAmbientColor;

    mediump vec3 normalizedTransformedNormal = normalize(transformedNormal);
    highp vec3 normalizedLightDirection = normalize(lightDirection);

    lowp float intensity = max(0.0, dot(normalizedTransformedNormal, normalizedLightDirection));
    result += finalDiffuseColor*lightColor*intensity;

    // no highlight on faces turned away from the light
    if(intensity > 0.001) {
        highp vec3 reflection = reflect(-normalizedLightDirection, normalizedTransformedNormal);
        mediump float specularity = pow(max(0.0, dot(normalize(cameraDirection), reflection)), shininess);
        result += finalSpecularColor*lightColor*specularity;
    }

    color = vec4(result, 1.0);
}
`

const phongPreamble = `#version 300 es
precision highp float;
precision highp int;
`

// Defines returns the preprocessor symbols enabled for a variant.
func Defines(flags phong.Flags) []string {
	var defines []string
	if flags.Has(phong.AmbientTexture) {
		defines = append(defines, "AMBIENT_TEXTURE")
	}
	if flags.Has(phong.DiffuseTexture) {
		defines = append(defines, "DIFFUSE_TEXTURE")
	}
	if flags.Has(phong.SpecularTexture) {
		defines = append(defines, "SPECULAR_TEXTURE")
	}
	if flags.Textured() {
		defines = append(defines, "TEXTURED")
	}
	return defines
}

func generate(flags phong.Flags, body string) string {
	var sb strings.Builder
	sb.WriteString(phongPreamble)
	for _, d := range Defines(flags) {
		fmt.Fprintf(&sb, "#define %s\n", d)
	}
	sb.WriteString(body)
	return sb.String()
}

// GenerateVertexShader returns the WebGL2 vertex source for a variant.
func GenerateVertexShader(flags phong.Flags) string {
	return generate(flags, phongVertexBody)
}

// GenerateFragmentShader returns the WebGL2 fragment source for a variant.
func GenerateFragmentShader(flags phong.Flags) string {
	return generate(flags, phongFragmentBody)
}

// ────────────────────────────────── Blit ──────────────────────────────────
// The blit program presents the offscreen target. It is written directly in
// the target dialect and never translated.

const blitVertexBody = `layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const blitFragmentBody = `in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

const blitFragmentBodyFlip = `in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, vec2(frag_uv.x, 1.0 - frag_uv.y)); }
`

// blitHeader returns the #version line for a context, plus the default
// precision ESSL fragment shaders need.
func blitHeader(v graphics.Version, fragment bool) string {
	switch {
	case v.ES && fragment:
		return "#version 300 es\nprecision mediump float;\n"
	case v.ES:
		return "#version 300 es\n"
	case v.AtLeast(graphics.GL410):
		return "#version 410 core\n"
	}
	return "#version 330 core\n"
}

func GenerateBlitVertexShader(v graphics.Version) string {
	return blitHeader(v, false) + blitVertexBody
}

func GetBlitFragmentShader(flip bool, v graphics.Version) string {
	if flip {
		return blitHeader(v, true) + blitFragmentBodyFlip
	}
	return blitHeader(v, true) + blitFragmentBody
}
