//go:build linux

package headless

import (
	"fmt"
	"time"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gophong/graphics"
	"github.com/richinsley/gophong/internal/logging"
)

/*
#cgo LDFLAGS: -lEGL -lGLESv2
#include <EGL/egl.h>
#include <EGL/eglext.h>

// Extension entry points are resolved on use; both wrappers fail cleanly
// when the driver lacks them.
static EGLBoolean query_devices(EGLint max, EGLDeviceEXT *devices, EGLint *count) {
    PFNEGLQUERYDEVICESEXTPROC fn = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
    return fn ? fn(max, devices, count) : EGL_FALSE;
}

static EGLDisplay device_display(EGLDeviceEXT device) {
    PFNEGLGETPLATFORMDISPLAYEXTPROC fn = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
    return fn ? fn(EGL_PLATFORM_DEVICE_EXT, device, NULL) : EGL_NO_DISPLAY;
}
*/
import "C"

// Headless is an EGL pbuffer context for rendering without a window server.
type Headless struct {
	display C.EGLDisplay
	context C.EGLContext
	surface C.EGLSurface
	width   int
	height  int
	start   time.Time
}

var _ graphics.Context = (*Headless)(nil)

// getEGLDisplay prefers the first enumerated device, which picks the GPU
// inside containers without a window server, and falls back to the default
// display when device enumeration is unavailable.
func getEGLDisplay(logger logging.Logger) (C.EGLDisplay, error) {
	var count C.EGLint
	if C.query_devices(0, nil, &count) == C.EGL_FALSE || count == 0 {
		logger.Debugf("EGL device enumeration unavailable, using the default display")
		return defaultDisplay()
	}

	devices := make([]C.EGLDeviceEXT, count)
	if C.query_devices(count, &devices[0], &count) == C.EGL_FALSE {
		return noDisplay(), fmt.Errorf("failed to query EGL devices")
	}
	for i := 0; i < int(count); i++ {
		display := C.device_display(devices[i])
		if display != noDisplay() {
			return display, nil
		}
	}
	return noDisplay(), fmt.Errorf("none of %d EGL devices has a display", count)
}

func defaultDisplay() (C.EGLDisplay, error) {
	display := C.eglGetDisplay(C.EGLNativeDisplayType(C.EGL_DEFAULT_DISPLAY))
	if display == noDisplay() {
		return display, fmt.Errorf("eglGetDisplay(EGL_DEFAULT_DISPLAY) failed")
	}
	return display, nil
}

func noDisplay() C.EGLDisplay {
	return C.EGLDisplay(C.EGL_NO_DISPLAY)
}

// NewHeadless creates a GLES 3 pbuffer context of the given size and makes it
// current.
func NewHeadless(width, height int, logger logging.Logger) (graphics.Context, error) {
	logger = logging.OrNop(logger)
	h := &Headless{
		display: noDisplay(),
		context: C.EGLContext(C.EGL_NO_CONTEXT),
		surface: C.EGLSurface(C.EGL_NO_SURFACE),
		width:   width,
		height:  height,
		start:   time.Now(),
	}
	if err := h.init(logger); err != nil {
		h.Shutdown()
		return nil, err
	}
	return h, nil
}

func (h *Headless) init(logger logging.Logger) error {
	display, err := getEGLDisplay(logger)
	if err != nil {
		return fmt.Errorf("failed to get EGL display: %w", err)
	}

	var major, minor C.EGLint
	if C.eglInitialize(display, &major, &minor) == C.EGL_FALSE {
		return fmt.Errorf("failed to initialize EGL")
	}
	h.display = display
	logger.Infof("EGL %d.%d initialized", major, minor)

	configAttribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_DEPTH_SIZE, 24,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_ES3_BIT,
		C.EGL_NONE,
	}
	var config C.EGLConfig
	var numConfig C.EGLint
	if C.eglChooseConfig(h.display, &configAttribs[0], &config, 1, &numConfig) == C.EGL_FALSE || numConfig == 0 {
		return fmt.Errorf("failed to choose EGL config")
	}

	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(h.width),
		C.EGL_HEIGHT, C.EGLint(h.height),
		C.EGL_NONE,
	}
	h.surface = C.eglCreatePbufferSurface(h.display, config, &pbufferAttribs[0])
	if h.surface == C.EGLSurface(C.EGL_NO_SURFACE) {
		return fmt.Errorf("failed to create %dx%d pbuffer surface", h.width, h.height)
	}

	contextAttribs := []C.EGLint{C.EGL_CONTEXT_CLIENT_VERSION, 3, C.EGL_NONE}
	h.context = C.eglCreateContext(h.display, config, C.EGLContext(C.EGL_NO_CONTEXT), &contextAttribs[0])
	if h.context == C.EGLContext(C.EGL_NO_CONTEXT) {
		return fmt.Errorf("failed to create EGL context")
	}

	if C.eglMakeCurrent(h.display, h.surface, h.surface, h.context) == C.EGL_FALSE {
		return fmt.Errorf("failed to make EGL context current")
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL ES: %w", err)
	}
	return nil
}

// Shutdown releases whatever EGL state exists, so it also cleans up after a
// failed NewHeadless.
func (h *Headless) Shutdown() {
	if h.display != noDisplay() {
		C.eglMakeCurrent(h.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
		if h.context != C.EGLContext(C.EGL_NO_CONTEXT) {
			C.eglDestroyContext(h.display, h.context)
		}
		if h.surface != C.EGLSurface(C.EGL_NO_SURFACE) {
			C.eglDestroySurface(h.display, h.surface)
		}
		C.eglTerminate(h.display)
	}
}

func (h *Headless) MakeCurrent() {
	C.eglMakeCurrent(h.display, h.surface, h.surface, h.context)
}

// ShouldClose is always false; headless runs end when their frame budget does.
func (h *Headless) ShouldClose() bool {
	return false
}

func (h *Headless) EndFrame() {
	C.eglSwapBuffers(h.display, h.surface)
}

func (h *Headless) GetFramebufferSize() (int, int) {
	return h.width, h.height
}

func (h *Headless) Time() float64 {
	return time.Since(h.start).Seconds()
}

func (h *Headless) IsGLES() bool {
	return true
}
