package phong

import (
	"fmt"
	"strings"
)

// Flag selects whether a color channel is fed by a texture instead of a
// uniform color.
type Flag uint8

const (
	// AmbientTexture makes the shader sample the ambient color from a texture.
	AmbientTexture Flag = 1 << 0
	// DiffuseTexture makes the shader sample the diffuse color from a texture.
	DiffuseTexture Flag = 1 << 1
	// SpecularTexture makes the shader sample the specular color from a texture.
	SpecularTexture Flag = 1 << 2
)

var flagNames = []struct {
	flag  Flag
	name  string
	short string
}{
	{AmbientTexture, "AmbientTexture", "ambient"},
	{DiffuseTexture, "DiffuseTexture", "diffuse"},
	{SpecularTexture, "SpecularTexture", "specular"},
}

// Flags is a set of Flag values. The zero value is the empty set, which
// selects the purely colored variant.
type Flags uint8

const allFlags = Flags(AmbientTexture | DiffuseTexture | SpecularTexture)

// NewFlags returns the set containing the given flags.
func NewFlags(flags ...Flag) Flags {
	var f Flags
	for _, flag := range flags {
		f |= Flags(flag)
	}
	return f
}

// Has reports whether flag is in the set.
func (f Flags) Has(flag Flag) bool {
	return f&Flags(flag) != 0
}

func (f Flags) Union(other Flags) Flags {
	return (f | other) & allFlags
}

func (f Flags) Intersect(other Flags) Flags {
	return f & other & allFlags
}

func (f Flags) Without(other Flags) Flags {
	return f &^ other & allFlags
}

func (f Flags) IsEmpty() bool {
	return f&allFlags == 0
}

// Textured reports whether any channel is texture driven, in which case the
// mesh must carry texture coordinates.
func (f Flags) Textured() bool {
	return !f.IsEmpty()
}

func (f Flags) String() string {
	if f.IsEmpty() {
		return "None"
	}
	parts := make([]string, 0, len(flagNames))
	for _, n := range flagNames {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFlags parses a comma or pipe separated list such as "ambient,diffuse"
// or "DiffuseTexture|SpecularTexture". "" and "none" yield the empty set.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	for _, field := range fields {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "none" {
			continue
		}
		matched := false
		for _, n := range flagNames {
			if field == n.short || field == strings.ToLower(n.name) {
				f |= Flags(n.flag)
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("unknown phong flag %q", field)
		}
	}
	return f, nil
}

// AllFlags enumerates every valid flag combination, starting with the empty set.
func AllFlags() []Flags {
	out := make([]Flags, 0, int(allFlags)+1)
	for f := Flags(0); f <= allFlags; f++ {
		out = append(out, f)
	}
	return out
}
