// Package register implements the LR35902 register file: the
// Accumulator/Flags pair and the B,C,D,E,H,L general-purpose registers, the
// 16-bit paired views over them, and the stack pointer / program counter.
package register

import "gbcpu/bitfield"

// Flag bit positions within F, 1-indexed from the MSB (bit 7), matching
// bitfield's convention: pos 1 is bit 7, pos 4 is bit 4.
const (
	zPos = bitfield.I1
	nPos = bitfield.I2
	hPos = bitfield.I3
	cPos = bitfield.I4
)

// File holds the eight 8-bit registers plus SP and PC. WriteAF and the flag
// setters keep F's low nibble zero. F is an exported field, so a direct
// assignment to it is not masked.
type File struct {
	PC, SP uint16
	A, F   uint8
	B, C   uint8
	D, E   uint8
	H, L   uint8
}

// AF returns the combined Accumulator+Flags word.
func (f *File) AF() uint16 { return uint16(f.A)<<8 | uint16(f.F) }

// BC returns the combined B,C word.
func (f *File) BC() uint16 { return uint16(f.B)<<8 | uint16(f.C) }

// DE returns the combined D,E word.
func (f *File) DE() uint16 { return uint16(f.D)<<8 | uint16(f.E) }

// HL returns the combined H,L word.
func (f *File) HL() uint16 { return uint16(f.H)<<8 | uint16(f.L) }

// WriteAF sets A and F from a word, masking F's low nibble to zero.
func (f *File) WriteAF(v uint16) {
	f.A = uint8(v >> 8)
	f.F = uint8(v) & 0xF0
}

func (f *File) WriteBC(v uint16) { f.B = uint8(v >> 8); f.C = uint8(v) }
func (f *File) WriteDE(v uint16) { f.D = uint8(v >> 8); f.E = uint8(v) }
func (f *File) WriteHL(v uint16) { f.H = uint8(v >> 8); f.L = uint8(v) }

// Zero flag (Z, bit 7): set when the result of the last flag-affecting
// operation was zero.
func (f *File) Zero() bool { return bitfield.IsSet(f.F, zPos) }

// Subtract flag (N, bit 6): set after a subtraction; consulted by DAA.
func (f *File) Subtract() bool { return bitfield.IsSet(f.F, nPos) }

// HalfCarry flag (H, bit 5): carry/borrow out of bit 3.
func (f *File) HalfCarry() bool { return bitfield.IsSet(f.F, hPos) }

// Carry flag (C, bit 4): carry/borrow out of bit 7.
func (f *File) Carry() bool { return bitfield.IsSet(f.F, cPos) }

func (f *File) SetZero(b bool)      { f.setFlag(zPos, b) }
func (f *File) SetSubtract(b bool)  { f.setFlag(nPos, b) }
func (f *File) SetHalfCarry(b bool) { f.setFlag(hPos, b) }
func (f *File) SetCarry(b bool)     { f.setFlag(cPos, b) }

// FlipCarry complements C in place, used by CCF.
func (f *File) FlipCarry() { f.F = bitfield.Flip(f.F, cPos, cPos) }

func (f *File) setFlag(pos bitfield.Index, set bool) {
	if set {
		f.F = bitfield.Set(f.F, pos, 1)
		return
	}
	f.F = bitfield.Unset(f.F, pos, pos)
}
