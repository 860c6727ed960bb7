package cpu

import "gbcpu/interrupt"

// vectors are the fixed jump targets for each interrupt source, in priority
// order.
var vectors = [5]uint16{
	interrupt.VBlank:  0x0040,
	interrupt.LCDStat: 0x0048,
	interrupt.Timer:   0x0050,
	interrupt.Serial:  0x0058,
	interrupt.Joypad:  0x0060,
}

// beginInterruptService acknowledges src, clears IME, and arms the stepped
// dispatch sequence continueInterruptService drives to completion. This
// call itself spends no M-cycle; it is bookkeeping done at the instruction
// boundary where the interrupt was noticed.
func (c *CPU) beginInterruptService(bus Bus, src interrupt.Source) {
	bus.Interrupts().Ack(src)
	bus.Interrupts().SetIME(false)
	c.servicing = true
	c.intStep = 0
	c.intSrc = src
}

// continueInterruptService runs one M-cycle of the five-M-cycle interrupt
// dispatch sequence: two internal cycles, two cycles pushing the current
// PC (the second also loads the vector into PC), and a final cycle that
// fetches the first opcode at the vector.
func (c *CPU) continueInterruptService(bus Bus) {
	switch c.intStep {
	case 0:
		c.intStep = 1
	case 1:
		c.intStep = 2
	case 2:
		c.Reg.SP--
		bus.Write(c.Reg.SP, byte(c.Reg.PC>>8))
		c.intStep = 3
	case 3:
		c.Reg.SP--
		bus.Write(c.Reg.SP, byte(c.Reg.PC))
		c.Reg.PC = vectors[c.intSrc]
		c.intStep = 4
	default:
		c.fetch(bus)
		c.servicing = false
		c.intStep = 0
	}
}
