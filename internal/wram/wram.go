// Package wram implements the Game Boy's 8 KiB work RAM (C000-DFFF), which
// is also visible, mirrored, through the echo region E000-FDFF.
package wram

// size is 8 KiB; addresses are masked onto it so that both the C000-DDFF
// bank and its E000-FDFF echo land on the same bytes.
const size = 0x2000

// RAM is a flat byte array addressed modulo its size.
type RAM struct {
	mem [size]byte
}

// New returns a zeroed work RAM bank.
func New() *RAM { return &RAM{} }

func (r *RAM) Read(addr uint16) byte { return r.mem[addr&(size-1)] }

func (r *RAM) Write(addr uint16, v byte) { r.mem[addr&(size-1)] = v }
