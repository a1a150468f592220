package phong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_SetOperations(t *testing.T) {
	ad := NewFlags(AmbientTexture, DiffuseTexture)
	ds := NewFlags(DiffuseTexture, SpecularTexture)

	assert.True(t, ad.Has(AmbientTexture))
	assert.True(t, ad.Has(DiffuseTexture))
	assert.False(t, ad.Has(SpecularTexture))

	assert.Equal(t, NewFlags(AmbientTexture, DiffuseTexture, SpecularTexture), ad.Union(ds))
	assert.Equal(t, NewFlags(DiffuseTexture), ad.Intersect(ds))
	assert.Equal(t, NewFlags(AmbientTexture), ad.Without(ds))

	assert.True(t, Flags(0).IsEmpty())
	assert.False(t, Flags(0).Textured())
	assert.True(t, ad.Textured())
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "None", Flags(0).String())
	assert.Equal(t, "AmbientTexture|SpecularTexture", NewFlags(SpecularTexture, AmbientTexture).String())
	assert.Equal(t, "AmbientTexture|DiffuseTexture|SpecularTexture", allFlags.String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		in   string
		want Flags
	}{
		{"", 0},
		{"none", 0},
		{"ambient", NewFlags(AmbientTexture)},
		{"diffuse,specular", NewFlags(DiffuseTexture, SpecularTexture)},
		{"AmbientTexture|SpecularTexture", NewFlags(AmbientTexture, SpecularTexture)},
		{" ambient , diffuse ", NewFlags(AmbientTexture, DiffuseTexture)},
	}
	for _, tt := range tests {
		got, err := ParseFlags(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFlags("emissive")
	assert.Error(t, err)
}

func TestParseFlags_RoundTripsString(t *testing.T) {
	for _, f := range AllFlags() {
		got, err := ParseFlags(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestAllFlags(t *testing.T) {
	all := AllFlags()
	require.Len(t, all, 8)
	assert.Equal(t, Flags(0), all[0])
	assert.Equal(t, allFlags, all[7])
}
