// Package cpu implements the Sharp LR35902 core as a cycle-stepped state
// machine: one call to Tick advances the CPU by exactly one M-cycle (four
// host clocks), touching the bus at most once per call.
package cpu

import (
	"errors"
	"fmt"

	"gbcpu/interrupt"
	"gbcpu/register"
)

// Bus is everything the CPU needs from the memory-mapped world: byte-wide
// reads and writes, and the interrupt controller it consults directly for
// IME and priority resolution. gbcpu/bus.Bus satisfies this, and the cpu
// tests run against it too.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
	Interrupts() *interrupt.Controller
}

// ErrIllegalOpcode is wrapped into the error Tick returns once it decodes
// one of the eleven undocumented-and-unimplemented opcodes. The CPU is
// frozen from that point on: every subsequent Tick call returns the same
// error without touching the bus again.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// CPU is the LR35902 register file plus the execution state needed to
// resume an in-flight instruction across Tick calls.
//
// opcode/cb identify the instruction currently dispatching (cb selects the
// CB-prefixed table). step is scratch shared with whichever operand is
// mid-access; phase is the instruction body's own position, independent of
// step so a multi-cycle operand's internal bookkeeping never collides with
// the instruction's notion of "which operand am I on." val8/val16 are
// scratch used by both layers; only one is ever live at a time since
// operand access and instruction phases are strictly sequential.
type CPU struct {
	Reg register.File

	opcode byte
	cb     bool
	step   byte
	phase  byte
	val8   byte
	val16  uint16

	halted    bool
	needFetch bool
	imePending bool

	servicing bool
	intStep   byte
	intSrc    interrupt.Source

	fault error

	// Trace, if set, is called once per instruction dispatch (not once per
	// M-cycle), after the opcode for that instruction is known but before
	// it runs. Nothing in this repository sets it; the debug package reads
	// the mnemonic at PC through NextMnemonic instead.
	Trace func(c *CPU)
}

// New returns a CPU with regs as its initial register state. The zero value
// of the execution state (opcode 0x00, step/phase 0) decodes as NOP, which
// is the architecturally correct bootstrap: the first Tick call dispatches
// that implicit NOP, whose entire effect is to fetch the real opcode at PC
// and advance past it, exactly the "opening fetch" a cold CPU needs before
// a steady-state dispatch loop can run.
func New(regs register.File) *CPU {
	return &CPU{Reg: regs}
}

// Fault returns the error that froze the CPU, or nil if it is still
// running.
func (c *CPU) Fault() error { return c.fault }

// Halted reports whether the CPU is suspended in HALT.
func (c *CPU) Halted() bool { return c.halted }

// Tick advances the CPU by exactly one M-cycle: at most one bus access
// happens per call. Once an illegal opcode has been decoded, Tick is a
// no-op that keeps returning that error.
func (c *CPU) Tick(bus Bus) error {
	if c.fault != nil {
		return c.fault
	}

	if c.servicing {
		c.continueInterruptService(bus)
		return c.fault
	}

	if c.halted {
		if !bus.Interrupts().Pending() {
			return nil
		}
		c.halted = false
		c.needFetch = true
	}

	if c.step == 0 && c.phase == 0 {
		if bus.Interrupts().IME() {
			if src, ok := bus.Interrupts().HighestPending(); ok {
				c.beginInterruptService(bus, src)
				c.imePending = false
				// The service ends with its own fetch at the vector, which
				// replaces the fetch a HALT wake would otherwise make.
				c.needFetch = false
				c.continueInterruptService(bus)
				return c.fault
			}
		}
		if c.imePending {
			bus.Interrupts().SetIME(true)
			c.imePending = false
		}
		if c.needFetch {
			c.fetch(bus)
			c.needFetch = false
			return nil
		}
	}

	c.dispatch(bus)
	return c.fault
}

// fetch reads the opcode at PC, advances PC, and arms the CPU to dispatch
// it as a fresh, non-CB instruction on the next call. Every instruction's
// terminal action calls this, so the fetch for instruction N+1 overlaps
// the last M-cycle of instruction N exactly as it does on real hardware.
func (c *CPU) fetch(bus Bus) {
	c.opcode = bus.Read(c.Reg.PC)
	c.Reg.PC++
	c.cb = false
	c.step = 0
	c.phase = 0
}

func (c *CPU) dispatch(bus Bus) {
	if !c.cb && c.opcode == 0xCB && c.step == 0 && c.phase == 0 {
		c.opcode = bus.Read(c.Reg.PC)
		c.Reg.PC++
		c.cb = true
		return
	}

	var (
		entry opcodeEntry
		ok    bool
	)
	if c.cb {
		entry, ok = cbTable[c.opcode]
	} else {
		entry, ok = mainTable[c.opcode]
	}
	if !ok {
		c.fault = fmt.Errorf("%w: %#02x", ErrIllegalOpcode, c.opcode)
		return
	}
	if c.step == 0 && c.phase == 0 && c.Trace != nil {
		c.Trace(c)
	}
	entry.exec(c, bus)
}

type opcodeEntry struct {
	name string
	exec func(c *CPU, bus Bus)
}

// NextMnemonic peeks the opcode at PC (and its CB-prefixed second byte, if
// any) without consuming it and returns its mnemonic. It never touches CPU
// state. After an instruction completes, its last M-cycle has already
// fetched the following opcode and moved PC past it, so the byte at PC
// belongs to the instruction after the one the next Tick dispatches;
// mid-instruction, PC may point at an operand byte.
func (c *CPU) NextMnemonic(bus Bus) string {
	op := bus.Read(c.Reg.PC)
	if op == 0xCB {
		sub := bus.Read(c.Reg.PC + 1)
		if entry, ok := cbTable[sub]; ok {
			return entry.name
		}
		return "???"
	}
	if entry, ok := mainTable[op]; ok {
		return entry.name
	}
	return "???"
}
