package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEchoRAMAliasesWorkRAM(t *testing.T) {
	b := New(nil, nil)
	b.Write(0xC010, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0xE010))

	b.Write(0xFDFF, 0x99)
	assert.Equal(t, byte(0x99), b.Read(0xDDFF))
}

func TestHRAMAddressing(t *testing.T) {
	b := New(nil, nil)
	b.Write(0xFF80, 1)
	b.Write(0xFFFE, 2)
	assert.Equal(t, byte(1), b.Read(0xFF80))
	assert.Equal(t, byte(2), b.Read(0xFFFE))
}

func TestBootROMOverlayAndOneWayDisable(t *testing.T) {
	boot := []byte{0xAA, 0xBB}
	cart := []byte{0x11, 0x22, 0x33}
	b := New(boot, cart)

	assert.Equal(t, byte(0xAA), b.Read(0x0000))

	b.Write(0xFF50, 1)
	assert.Equal(t, byte(0x11), b.Read(0x0000), "reads the cartridge once the boot ROM is disabled")

	b.Write(0xFF50, 0)
	assert.Equal(t, byte(0x11), b.Read(0x0000), "boot ROM disable is one-way")
}

func TestBootROMDisableIgnoresZeroWrite(t *testing.T) {
	b := New([]byte{0xAA}, []byte{0x11})
	b.Write(0xFF50, 0)
	assert.Equal(t, byte(0xAA), b.Read(0x0000), "a zero write to FF50 must not disable the boot ROM")
}

func TestUnmappedAddressReadsOpenBus(t *testing.T) {
	b := New(nil, nil)
	assert.Equal(t, byte(0xFF), b.Read(0xFEA0))
}

func TestInterruptRegisterDispatch(t *testing.T) {
	b := New(nil, nil)
	b.Write(0xFFFF, 0x1F)
	b.Write(0xFF0F, 0x01)
	assert.Equal(t, byte(0x1F), b.Read(0xFFFF))
	assert.Equal(t, byte(0x01), b.Read(0xFF0F))
	assert.True(t, b.Interrupts().Pending(), "controller should see VBlank pending after bus-level IE/IF writes")
}

func TestCartridgeROMIsReadOnly(t *testing.T) {
	cart := make([]byte, 0x0151)
	cart[0x0150] = 0x22
	b := New(nil, cart)
	b.Write(0x0150, 0x99)
	assert.Equal(t, byte(0x22), b.Read(0x0150), "ROM writes are no-ops")
}
