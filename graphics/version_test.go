package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"4.1 Metal - 76.3", Version{Major: 4, Minor: 1}},
		{"4.6.0 NVIDIA 535.54.03", Version{Major: 4, Minor: 6}},
		{"3.3 (Core Profile) Mesa 23.0.4", Version{Major: 3, Minor: 3}},
		{"OpenGL ES 3.2 Mesa 23.0.4", Version{Major: 3, Minor: 2, ES: true}},
		{"OpenGL ES 3.0 V@415.0", Version{Major: 3, Minor: 0, ES: true}},
		{"2.1", Version{Major: 2, Minor: 1}},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "WebGL", "four.one", "4"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestVersion_AtLeast(t *testing.T) {
	assert.True(t, GL410.AtLeast(GL330))
	assert.True(t, GL410.AtLeast(GL410))
	assert.False(t, GL330.AtLeast(GL410))
	assert.False(t, Version{Major: 3, Minor: 2, ES: true}.AtLeast(GL330))
	assert.True(t, Version{Major: 3, Minor: 2, ES: true}.AtLeast(GLES300))
}

func TestVersion_SupportedVersion(t *testing.T) {
	v := Version{Major: 4, Minor: 0}
	assert.Equal(t, GL330, v.SupportedVersion(GL410, GL330))
	assert.Equal(t, Version{}, Version{Major: 2, Minor: 1}.SupportedVersion(GL410, GL330))
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "OpenGL 4.1", GL410.String())
	assert.Equal(t, "OpenGL ES 3.0", GLES300.String())
}

func TestInfo_HasExtension(t *testing.T) {
	info := &Info{Extensions: []string{"GL_ARB_debug_output", "GL_KHR_debug"}}
	assert.True(t, info.HasExtension("GL_KHR_debug"))
	assert.False(t, info.HasExtension("GL_ARB_multi_bind"))
}
