package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(prefix string, debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewDefaultLogger(prefix, debug)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestDefaultLogger_Levels(t *testing.T) {
	l, out, errOut := newBufferedLogger("phong", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.Infof("linked %s", "variant")
	assert.Equal(t, "[phong] INFO: linked variant\n", out.String())

	l.Warnf("careful")
	l.Errorf("broken")
	assert.Equal(t, "[phong] WARN: careful\n[phong] ERROR: broken\n", errOut.String())
}

func TestDefaultLogger_SetDebug(t *testing.T) {
	l, out, _ := newBufferedLogger("", false)
	assert.False(t, l.DebugEnabled())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("slot %d", 3)
	assert.Equal(t, "DEBUG: slot 3\n", out.String())
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	assert.False(t, OrNop(nil).DebugEnabled())

	l := NewDefaultLogger("x", true)
	assert.Same(t, l, OrNop(l))
}
