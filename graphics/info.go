package graphics

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Info describes the current GL context.
type Info struct {
	Vendor      string
	Renderer    string
	VersionText string
	GLSL        string
	Version     Version
	Extensions  []string
}

// QueryInfo reads the driver strings of the current context. gl.Init must
// have been called.
func QueryInfo() (*Info, error) {
	info := &Info{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		VersionText: gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:        gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	v, err := ParseVersion(info.VersionText)
	if err != nil {
		return nil, fmt.Errorf("failed to query context version: %w", err)
	}
	info.Version = v

	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	info.Extensions = make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		info.Extensions = append(info.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return info, nil
}

// HasExtension reports whether the context advertises name.
func (i *Info) HasExtension(name string) bool {
	for _, e := range i.Extensions {
		if e == name {
			return true
		}
	}
	return false
}
