package phong

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantCache_LinksOncePerVariant(t *testing.T) {
	linker := newFakeLinker()
	cache := NewVariantCache(linker, newFakeBinder())

	colored, err := cache.Get(0)
	require.NoError(t, err)
	textured, err := cache.Get(NewFlags(DiffuseTexture))
	require.NoError(t, err)
	again, err := cache.Get(0)
	require.NoError(t, err)

	assert.Same(t, colored, again)
	assert.NotSame(t, colored, textured)
	assert.Equal(t, []Flags{0, NewFlags(DiffuseTexture)}, linker.links)
	assert.Equal(t, 2, cache.Len())

	seen := 0
	cache.Each(func(*Phong) { seen++ })
	assert.Equal(t, 2, seen)

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestVariantCache_DoesNotCacheFailures(t *testing.T) {
	linker := newFakeLinker()
	linker.err = errors.New("link failed")
	cache := NewVariantCache(linker, nil)

	_, err := cache.Get(allFlags)
	require.Error(t, err)

	linker.err = nil
	p, err := cache.Get(allFlags)
	require.NoError(t, err)
	assert.Equal(t, allFlags, p.Flags())
	assert.Len(t, linker.links, 2)
}
