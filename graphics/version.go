package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an OpenGL or OpenGL ES context version.
type Version struct {
	Major int
	Minor int
	ES    bool
}

var (
	GL330   = Version{Major: 3, Minor: 3}
	GL410   = Version{Major: 4, Minor: 1}
	GLES300 = Version{Major: 3, Minor: 0, ES: true}
)

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v provides everything other does. Desktop and ES
// versions are never comparable.
func (v Version) AtLeast(other Version) bool {
	if v.ES != other.ES {
		return false
	}
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// SupportedVersion returns the first candidate v supports, or the zero
// Version when none is.
func (v Version) SupportedVersion(candidates ...Version) Version {
	for _, c := range candidates {
		if v.AtLeast(c) {
			return c
		}
	}
	return Version{}
}

// ParseVersion parses a GL_VERSION string such as "4.1 Metal - 76.3",
// "4.6.0 NVIDIA 535.54" or "OpenGL ES 3.2 Mesa 23.0".
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(rest, "OpenGL ES"); ok {
		v.ES = true
		rest = strings.TrimSpace(after)
		// "OpenGL ES-CM 1.1" and friends
		if i := strings.IndexByte(rest, ' '); strings.HasPrefix(rest, "-") && i >= 0 {
			rest = strings.TrimSpace(rest[i:])
		}
	}

	number := rest
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		number = rest[:i]
	}
	parts := strings.Split(number, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("unsupported version string: %q", s)
	}

	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("unsupported version string: %q", s)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("unsupported version string: %q", s)
	}
	return v, nil
}
