// Package ppu is a minimal stand-in for the video pixel pipeline: VRAM,
// OAM, and the FF40-FF4B register block. Pixel generation, mode timing, and
// the LCD surface are out of scope for the CPU core (see spec Non-goals);
// this package exists only to give the bus façade something real to
// dispatch the PPU-owned address ranges to.
package ppu

const (
	vramSize = 0x2000
	oamSize  = 0xA0
	regBase  = 0xFF40
	regCount = 0x0C
)

// PPU holds the memory-mapped state the CPU can see: VRAM, OAM, and the
// LCDC/STAT/SCY/.../WX register block.
type PPU struct {
	vram [vramSize]byte
	oam  [oamSize]byte
	regs [regCount]byte
}

// New returns a PPU with all memory zeroed.
func New() *PPU { return &PPU{} }

func (p *PPU) ReadVRAM(addr uint16) byte     { return p.vram[addr&(vramSize-1)] }
func (p *PPU) WriteVRAM(addr uint16, v byte) { p.vram[addr&(vramSize-1)] = v }

func (p *PPU) ReadOAM(addr uint16) byte     { return p.oam[addr%oamSize] }
func (p *PPU) WriteOAM(addr uint16, v byte) { p.oam[addr%oamSize] = v }

// ReadReg and WriteReg service FF40-FF4B.
func (p *PPU) ReadReg(addr uint16) byte     { return p.regs[addr-regBase] }
func (p *PPU) WriteReg(addr uint16, v byte) { p.regs[addr-regBase] = v }
