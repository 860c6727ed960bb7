// Package cartridge is a minimal stand-in for the Game Boy cartridge slot:
// ROM at 0000-7FFF and external (battery-backed) RAM at A000-BFFF. It
// implements no memory-bank-controller behavior — bank switching is out of
// scope for the CPU core (see spec Non-goals) — but it occupies the address
// ranges a real cartridge does, so the bus façade has something to dispatch
// to while exercising those ranges.
package cartridge

const externalRAMSize = 0x2000

// Cartridge holds a flat ROM image and one fixed external RAM bank.
type Cartridge struct {
	rom []byte
	ram [externalRAMSize]byte
}

// New wraps rom as the cartridge image. A nil or short rom reads as 0xFF
// past its end, matching an unplugged cartridge slot.
func New(rom []byte) *Cartridge {
	return &Cartridge{rom: rom}
}

// ReadROM services 0100-7FFF (and 0000-00FF when the boot ROM is inactive).
func (c *Cartridge) ReadROM(addr uint16) byte {
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// WriteROM would ordinarily latch an MBC register; with no MBC modeled, it
// is a no-op, matching a ROM-only cartridge.
func (c *Cartridge) WriteROM(addr uint16, v byte) {}

// ReadRAM services A000-BFFF.
func (c *Cartridge) ReadRAM(addr uint16) byte {
	return c.ram[addr&(externalRAMSize-1)]
}

// WriteRAM services A000-BFFF.
func (c *Cartridge) WriteRAM(addr uint16, v byte) {
	c.ram[addr&(externalRAMSize-1)] = v
}
