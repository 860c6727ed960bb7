// Package bus implements the CPU's address-decoded view of memory: the
// façade in front of the boot ROM, cartridge, work RAM, high RAM, PPU, and
// interrupt registers, per the address map in the spec.
//
// Adapted from the teacher's mem.Bus, which was a single flat 64 KiB array;
// this bus instead dispatches each range to the collaborator that owns it,
// as a real Game Boy's address decoder does.
package bus

import (
	"gbcpu/interrupt"
	"gbcpu/internal/bootrom"
	"gbcpu/internal/cartridge"
	"gbcpu/internal/hram"
	"gbcpu/internal/ppu"
	"gbcpu/internal/wram"
)

// Bus wires the address-decoded peripherals together and is the only view
// of memory the CPU has. Addresses outside any mapped range read as 0xFF
// and drop writes silently, matching open-bus behavior real cartridges rely
// on.
type Bus struct {
	Boot *bootrom.ROM
	Cart *cartridge.Cartridge
	WRAM *wram.RAM
	HRAM *hram.RAM
	PPU  *ppu.PPU
	Int  *interrupt.Controller
}

// New wires a bus around the given boot ROM image and cartridge ROM image.
func New(bootImage, cartImage []byte) *Bus {
	return &Bus{
		Boot: bootrom.New(bootImage),
		Cart: cartridge.New(cartImage),
		WRAM: wram.New(),
		HRAM: hram.New(),
		PPU:  ppu.New(),
		Int:  &interrupt.Controller{},
	}
}

// Interrupts returns the interrupt controller the CPU talks to directly for
// IME, priority resolution, and acknowledgement, outside of the addressed
// FF0F/FFFF register reads and writes below.
func (b *Bus) Interrupts() *interrupt.Controller { return b.Int }

// Read dispatches a single byte read per the address map. Unmapped
// addresses return 0xFF.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= 0x00FF:
		if b.Boot.Active() {
			return b.Boot.Read(addr)
		}
		return b.Cart.ReadROM(addr)
	case addr <= 0x7FFF:
		return b.Cart.ReadROM(addr)
	case addr <= 0x9FFF:
		return b.PPU.ReadVRAM(addr - 0x8000)
	case addr <= 0xBFFF:
		return b.Cart.ReadRAM(addr - 0xA000)
	case addr <= 0xFDFF:
		return b.WRAM.Read(addr - 0xC000)
	case addr <= 0xFE9F:
		return b.PPU.ReadOAM(addr - 0xFE00)
	case addr == 0xFF0F:
		return b.Int.ReadIF()
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.PPU.ReadReg(addr)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.HRAM.Read(addr - 0xFF80)
	case addr == 0xFFFF:
		return b.Int.ReadIE()
	default:
		return 0xFF
	}
}

// Write dispatches a single byte write per the address map. Writes outside
// any mapped range are silently dropped.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= 0x00FF:
		// cartridge ROM is read-only, and the boot ROM is never written
		// through the bus; nothing to do while it's mapped here.
		if !b.Boot.Active() {
			b.Cart.WriteROM(addr, v)
		}
	case addr <= 0x7FFF:
		b.Cart.WriteROM(addr, v)
	case addr <= 0x9FFF:
		b.PPU.WriteVRAM(addr-0x8000, v)
	case addr <= 0xBFFF:
		b.Cart.WriteRAM(addr-0xA000, v)
	case addr <= 0xFDFF:
		b.WRAM.Write(addr-0xC000, v)
	case addr <= 0xFE9F:
		b.PPU.WriteOAM(addr-0xFE00, v)
	case addr == 0xFF0F:
		b.Int.WriteIF(v)
	case addr == 0xFF50:
		b.Boot.Disable(v)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.PPU.WriteReg(addr, v)
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.HRAM.Write(addr-0xFF80, v)
	case addr == 0xFFFF:
		b.Int.WriteIE(v)
	}
}
