package interrupt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestAck(t *testing.T) {
	var c Controller
	c.Request(Timer)
	assert.Equal(t, byte(1<<Timer), c.ReadIF())
	c.Ack(Timer)
	assert.Equal(t, byte(0), c.ReadIF())
}

func TestHighestPendingPriority(t *testing.T) {
	var c Controller
	c.WriteIE(0xFF)
	c.Request(Joypad)
	c.Request(Timer)
	c.Request(VBlank)

	src, ok := c.HighestPending()
	assert.True(t, ok)
	assert.Equal(t, VBlank, src)
}

func TestHighestPendingRequiresEnable(t *testing.T) {
	var c Controller
	c.Request(VBlank)
	_, ok := c.HighestPending()
	assert.False(t, ok, "VBlank is pending but not enabled in IE")

	c.WriteIE(1 << VBlank)
	src, ok := c.HighestPending()
	assert.True(t, ok)
	assert.Equal(t, VBlank, src)
}

func TestIEIFOnlyLow5BitsSignificant(t *testing.T) {
	var c Controller
	c.WriteIE(0xFF)
	c.WriteIF(0xFF)
	assert.Equal(t, byte(0x1F), c.ReadIE())
	assert.Equal(t, byte(0x1F), c.ReadIF())
}

func TestSetIME(t *testing.T) {
	var c Controller
	assert.False(t, c.IME())
	c.SetIME(true)
	assert.True(t, c.IME())
}

func TestPending(t *testing.T) {
	var c Controller
	assert.False(t, c.Pending())
	c.WriteIE(1 << Serial)
	c.Request(Serial)
	assert.True(t, c.Pending())
}
