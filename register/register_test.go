package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteAF(t *testing.T) {
	var f File
	f.WriteAF(0xFF00)
	assert.Equal(t, uint16(0xFF00), f.AF())
}

func TestWriteAFMasksLowNibble(t *testing.T) {
	var f File
	f.WriteAF(0b0011_0011_1010_1111)
	assert.Equal(t, uint16(0b0011_0011_1010_0000), f.AF())
	assert.Equal(t, byte(0), f.F&0x0F)
}

func TestReadWriteBC(t *testing.T) {
	var f File
	f.WriteBC(0xAFFA)
	assert.Equal(t, uint16(0xAFFA), f.BC())
}

func TestFlags(t *testing.T) {
	var f File
	f.SetZero(true)
	assert.True(t, f.Zero())
	f.SetZero(false)
	assert.False(t, f.Zero())

	f.SetCarry(true)
	assert.True(t, f.Carry())
	f.FlipCarry()
	assert.False(t, f.Carry())
	f.FlipCarry()
	assert.True(t, f.Carry())

	assert.Equal(t, byte(0), f.F&0x0F)
}

func TestFlagsIndependent(t *testing.T) {
	var f File
	f.SetZero(true)
	f.SetSubtract(true)
	f.SetHalfCarry(true)
	f.SetCarry(true)
	assert.Equal(t, byte(0xF0), f.F)

	f.SetSubtract(false)
	assert.True(t, f.Zero())
	assert.False(t, f.Subtract())
	assert.True(t, f.HalfCarry())
	assert.True(t, f.Carry())
}
