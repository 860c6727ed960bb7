// Package bootrom implements the 256-byte power-on boot ROM overlay at
// 0000-00FF and its one-way disable latch at FF50.
package bootrom

// ROM holds the boot image and the active latch. Once disabled (by any
// nonzero write to FF50) it cannot be reactivated.
type ROM struct {
	data   []byte
	active bool
}

// New wraps rom as the boot image, active from power-on.
func New(rom []byte) *ROM {
	return &ROM{data: rom, active: true}
}

// Active reports whether the boot ROM is currently mapped over 0000-00FF.
func (r *ROM) Active() bool { return r.active }

// Read returns the byte at addr within the boot image. Callers must only
// call this while Active reports true and addr is within 0000-00FF.
func (r *ROM) Read(addr uint16) byte {
	if int(addr) >= len(r.data) {
		return 0xFF
	}
	return r.data[addr]
}

// Disable latches the boot ROM out of the address space. Writing zero is a
// no-op; any nonzero value is a permanent, one-way disable.
func (r *ROM) Disable(v byte) {
	if v != 0 {
		r.active = false
	}
}
