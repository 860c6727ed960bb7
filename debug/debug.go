// Package debug implements an interactive single-step inspector for the
// cpu package, adapted from the teacher's cpu/debugger.go: the same
// bubbletea/lipgloss/go-spew stack, retargeted from a 6502 page table to
// the LR35902 register file, flags, and the decoded mnemonic at PC.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gbcpu/cpu"
)

type model struct {
	cpu *cpu.CPU
	bus cpu.Bus

	offset uint16 // center of the rendered hex-dump window
	prevPC uint16
	err    error
}

// New returns a bubbletea program that single-steps c against bus, centering
// the hex dump on offset.
func New(c *cpu.CPU, bus cpu.Bus, offset uint16) *tea.Program {
	return tea.NewProgram(model{cpu: c, bus: bus, offset: offset})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Reg.PC
			if err := m.cpu.Tick(m.bus); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderRow renders one 16-byte row of the address space, highlighting PC.
func (m model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.bus.Read(addr)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) hexDump() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	base := m.offset &^ 0x0F
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderRow(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	r := m.cpu.Reg
	flags := "Z N H C\n"
	for _, set := range []bool{r.Zero(), r.Subtract(), r.HalfCarry(), r.Carry()} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
AF: %04x
BC: %04x
DE: %04x
HL: %04x
halted: %v
%s`,
		r.PC, m.prevPC, r.SP, r.AF(), r.BC(), r.DE(), r.HL(), m.cpu.Halted(), flags,
	)
}

func (m model) View() string {
	next := m.cpu.NextMnemonic(m.bus)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.hexDump(), m.status()),
		"",
		spew.Sdump(next),
	)
}

// Run starts the interactive inspector, reporting the CPU's terminal fault
// (if any) once the program exits.
func Run(p *tea.Program) error {
	m, err := p.Run()
	if err != nil {
		return err
	}
	if x, ok := m.(model); ok && x.err != nil {
		return x.err
	}
	return nil
}
