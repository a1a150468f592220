//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/internal/logging"
)

func NewHeadless(width, height int, logger logging.Logger) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
