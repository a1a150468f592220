package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/richinsley/gophong/phong"
)

// ParseColor parses "r,g,b" with float components, or a single value used
// for all three.
func ParseColor(s string) (phong.Color3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return phong.Color3{}, fmt.Errorf("invalid color %q: want r,g,b", s)
	}
	var c phong.Color3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return phong.Color3{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c[i] = float32(v)
	}
	if len(parts) == 1 {
		c[1], c[2] = c[0], c[0]
	}
	return c, nil
}
