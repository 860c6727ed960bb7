// Package hram implements the Game Boy's 127-byte high RAM (FF80-FFFE),
// used by games as fast scratch/stack space close to the register file.
package hram

const size = 0x80

// RAM is a flat byte array addressed modulo its size.
type RAM struct {
	mem [size]byte
}

// New returns a zeroed high RAM bank.
func New() *RAM { return &RAM{} }

func (r *RAM) Read(addr uint16) byte { return r.mem[addr&(size-1)] }

func (r *RAM) Write(addr uint16, v byte) { r.mem[addr&(size-1)] = v }
