package phong

// VariantCache keeps one Phong per flag combination so each variant is
// linked only once. It is not safe for concurrent use.
type VariantCache struct {
	linker   Linker
	binder   TextureBinder
	opts     []Option
	variants map[Flags]*Phong
}

func NewVariantCache(linker Linker, binder TextureBinder, opts ...Option) *VariantCache {
	return &VariantCache{
		linker:   linker,
		binder:   binder,
		opts:     opts,
		variants: make(map[Flags]*Phong),
	}
}

// Get returns the variant for flags, linking it on first use. Failed links
// are not cached.
func (c *VariantCache) Get(flags Flags) (*Phong, error) {
	flags = flags.Intersect(allFlags)
	if p, ok := c.variants[flags]; ok {
		return p, nil
	}
	p, err := New(c.linker, c.binder, flags, c.opts...)
	if err != nil {
		return nil, err
	}
	c.variants[flags] = p
	return p, nil
}

// Len reports how many variants have been linked.
func (c *VariantCache) Len() int {
	return len(c.variants)
}

// Each calls fn for every linked variant, in no particular order.
func (c *VariantCache) Each(fn func(*Phong)) {
	for _, p := range c.variants {
		fn(p)
	}
}

// Reset forgets all variants. Releasing the programs is up to the linker
// that produced them.
func (c *VariantCache) Reset() {
	c.variants = make(map[Flags]*Phong)
}
